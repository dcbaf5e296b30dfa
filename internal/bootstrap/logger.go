package bootstrap

import (
	"os"

	"go.uber.org/zap"
)

// InitLogger builds the process logger from APP_ENV and installs it as
// the zap global. The returned func flushes buffered entries and is
// meant to be deferred in main.
func InitLogger() (func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return func() { _ = logger.Sync() }, nil
}
