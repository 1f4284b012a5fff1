package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger
	once sync.Once
)

// GetLogger returns the shared production logger.
func GetLogger() *zap.Logger {
	once.Do(func() {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
	return log
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
