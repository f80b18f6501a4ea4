package logger

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var base = newBaseLogger()

func newBaseLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l
}

// New returns a fresh log entry from the shared base logger.
func New() *logrus.Entry {
	return logrus.NewEntry(base)
}

// SetLevel adjusts the global log level at runtime.
func SetLevel(level logrus.Level) {
	base.SetLevel(level)
}

// FromGinContext returns a log entry enriched with request-scoped fields.
// The request id is set by the RequestID middleware.
func FromGinContext(c *gin.Context) *logrus.Entry {
	entry := New()
	if c == nil {
		return entry
	}
	if requestID := c.GetString("request_id"); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if c.Request != nil {
		entry = entry.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
	}
	return entry
}
