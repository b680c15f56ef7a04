package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New собирает логгер приложения. Логи уходят в stderr в формате JSON:
// stdout остается за выводом команд и его можно передавать дальше по конвейеру.
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{})

	log.SetOutput(os.Stderr)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}
