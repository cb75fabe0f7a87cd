package api

import (
	"fmt"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"url-shortener/internal/shortener"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// registerValidators adds the custom binding tags to gin's validator once per process.
func registerValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("httpurl", validateHTTPURL); err != nil {
			validatorsErr = fmt.Errorf("register httpurl validation: %w", err)
		}
	})
	return validatorsErr
}

// SetupRouter initializes and configures the Gin router.
func SetupRouter(h *Handler, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if err := registerValidators(); err != nil {
		log.Error("register binding validators failed", zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log))

	// Every origin may call the API.
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, requestIDHeader)
	config.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(config))

	r.GET("/health", h.HealthCheck)

	r.POST("/shorten", h.Shorten)
	r.GET("/all", h.List)
	r.GET("/:shortCode", h.Redirect)
	r.DELETE("/delete/:shortCode", h.Delete)

	return r
}

// validateHTTPURL accepts absolute http and https URLs with a host.
func validateHTTPURL(fl validator.FieldLevel) bool {
	_, err := shortener.NormalizeURL(fl.Field().String())
	return err == nil
}
