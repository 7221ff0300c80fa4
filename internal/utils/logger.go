package utils

import (
	"log"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. Access logs go through the fiber
// logger middleware separately; this logger is for service-level events
// (upstream failures, image resolution, persistence errors).
func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	return logger
}
