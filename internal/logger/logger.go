// Package logger builds the application logger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a zap logger configured for the given environment:
// production gets JSON output, everything else the development console
// encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
