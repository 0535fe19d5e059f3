package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.RWMutex
	log   = zap.NewNop()
	level = zap.NewAtomicLevel()
)

// Init builds the process logger. Development mode is human readable and logs debug.
func Init(isDev bool) error {
	cfg := zap.NewProductionConfig()
	if isDev {
		cfg = zap.NewDevelopmentConfig()
	}
	level.SetLevel(cfg.Level.Level())
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		return err
	}

	mu.Lock()
	log = l
	mu.Unlock()
	return nil
}

// SetLevel changes the minimum level of the logger built by Init, e.g. "warn".
func SetLevel(text string) error {
	return level.UnmarshalText([]byte(text))
}

// L returns the process logger, a no-op logger before Init.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Sync() {
	_ = L().Sync()
}
