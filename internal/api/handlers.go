package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"url-shortener/internal/db"
	"url-shortener/internal/shortener"
)

// ShortenRequest is the structure for the /shorten endpoint request body.
type ShortenRequest struct {
	OriginalURL string `json:"original_url" binding:"required,httpurl"`
}

// Service is what the handlers need from the shortener.
type Service interface {
	Shorten(rawURL string) (shortener.Link, error)
	List() ([]shortener.Link, error)
	Resolve(shortCode string) (string, error)
	Delete(shortCode string) error
	Ping() error
}

// Handler serves the HTTP endpoints on top of a Service.
type Handler struct {
	svc Service
	log *zap.Logger
}

// NewHandler returns a Handler. A nil logger disables logging.
func NewHandler(svc Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// Shorten handles the creation of short URLs. Repeated requests for the
// same URL return the existing short code.
func (h *Handler) Shorten(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body: " + err.Error()})
		return
	}

	link, err := h.svc.Shorten(req.OriginalURL)
	if err != nil {
		switch {
		case errors.Is(err, shortener.ErrInvalidURL):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		case errors.Is(err, db.ErrConflict):
			h.log.Warn("shorten conflict", zap.String("original_url", req.OriginalURL), zap.Error(err))
			c.JSON(http.StatusConflict, gin.H{"detail": "URL is being shortened concurrently, retry the request"})
		default:
			h.internalError(c, "shorten failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, link)
}

// List returns every shortened URL in insertion order.
func (h *Handler) List(c *gin.Context) {
	links, err := h.svc.List()
	if err != nil {
		h.internalError(c, "list failed", err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Redirect sends the client to the original URL behind a short code.
func (h *Handler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")

	originalURL, err := h.svc.Resolve(shortCode)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Short URL not found"})
			return
		}
		h.internalError(c, "resolve failed", err)
		return
	}

	// Location only; http.Redirect would add an HTML body.
	c.Header("Location", originalURL)
	c.Status(http.StatusFound)
}

// Delete removes a short code.
func (h *Handler) Delete(c *gin.Context) {
	shortCode := c.Param("shortCode")

	if err := h.svc.Delete(shortCode); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "URL not found"})
			return
		}
		h.internalError(c, "delete failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "URL deleted successfully"})
}

// HealthCheck reports whether the service and its database are up.
func (h *Handler) HealthCheck(c *gin.Context) {
	if err := h.svc.Ping(); err != nil {
		h.log.Error("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.log.Error(msg,
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
}
