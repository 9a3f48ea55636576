package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"kalaa-saarathi-api/internal/config"
)

// New builds a logrus logger from the logging configuration
func New(cfg config.LogConfig, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if out == nil {
		out = os.Stdout
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	}

	return logger, nil
}

// Setup builds the logger for the service and mirrors its settings onto the
// logrus standard logger used by the middleware package.
func Setup(cfg *config.Config) (*logrus.Logger, error) {
	logger, err := New(cfg.Log, os.Stdout)
	if err != nil {
		return nil, err
	}

	logrus.SetOutput(logger.Out)
	logrus.SetLevel(logger.GetLevel())
	logrus.SetFormatter(logger.Formatter)

	logger.WithFields(logrus.Fields{
		"service":     cfg.ServiceName,
		"environment": cfg.Environment,
		"mode":        config.GetDeploymentMode(),
	}).Debug("Logger initialized")

	return logger, nil
}
