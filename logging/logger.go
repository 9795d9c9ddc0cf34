package logging

import (
	"github.com/sirupsen/logrus"
)

// Logger es el logger compartido por el proceso
type Logger = *logrus.Logger

// Fields representa campos estructurados
type Fields = logrus.Fields

// NewLogger crea un logger con formato de texto y el nivel indicado
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel traduce el nivel textual; valores desconocidos quedan en info
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
