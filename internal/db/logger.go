package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// gormLogger routes gorm's log lines to zap at debug level. Errors reach
// callers as return values, so they are not logged a second time above debug.
type gormLogger struct {
	log *zap.Logger
}

// Print receives ("sql", source, duration, query, vars, rows) for statements
// and ("log", source, values...) for everything else.
func (l gormLogger) Print(values ...interface{}) {
	if len(values) < 2 {
		l.log.Debug("gorm", zap.String("message", fmt.Sprint(values...)))
		return
	}

	source := fmt.Sprint(values[1])
	if values[0] == "sql" && len(values) >= 6 {
		duration, _ := values[2].(time.Duration)
		l.log.Debug("gorm query",
			zap.String("source", source),
			zap.Duration("duration", duration),
			zap.String("sql", fmt.Sprint(values[3])),
			zap.Any("vars", values[4]),
			zap.Any("rows", values[5]))
		return
	}

	l.log.Debug("gorm",
		zap.String("source", source),
		zap.String("message", fmt.Sprint(values[2:]...)))
}
