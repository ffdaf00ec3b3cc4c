package logger

import (
	"glucolog-service/internal/app/config"

	"github.com/sirupsen/logrus"
)

// NewRequestLogger builds the plain-text logger used only for the per-request
// access line; structured application logging goes through zap.
func NewRequestLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	requestLogger := logrus.New()
	requestLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if internalConfig.App.Env == "production" {
		requestLogger.SetLevel(logrus.InfoLevel)
	} else {
		requestLogger.SetLevel(logrus.DebugLevel)
	}
	return requestLogger
}
