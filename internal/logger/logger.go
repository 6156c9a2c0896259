package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tatianab/zuul/internal/config"
)

// Setup creates the application logger. The terminal belongs to the game, so
// logs go to cfg.LogFile, or nowhere when it is empty. The returned closer
// releases the log file.
func Setup(cfg *config.Config) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetLevel(cfg.LogLevel)

	if cfg.Environment == "production" {
		// JSON format for production
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	if cfg.LogFile == "" {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// WithSession adds the session ID to logger context.
func WithSession(logger logrus.FieldLogger, sessionID string) *logrus.Entry {
	return logger.WithField("session_id", sessionID)
}

// WithError adds the error message to logger context as a plain string, so
// errors without exported fields still show up in JSON output. A nil error
// adds nothing.
func WithError(logger logrus.FieldLogger, err error) *logrus.Entry {
	if err == nil {
		return logger.WithFields(logrus.Fields{})
	}
	return logger.WithField(logrus.ErrorKey, err.Error())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
