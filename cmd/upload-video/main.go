package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/radar-speed-sign/video_uploads/internal/config"
	"github.com/radar-speed-sign/video_uploads/internal/handler"
	"github.com/radar-speed-sign/video_uploads/internal/logger"
	"github.com/radar-speed-sign/video_uploads/internal/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// Built once per cold start and shared by every invocation.
	store, err := storage.New(context.Background(), cfg.Storage, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize object store")
	}

	log.WithField("backend", cfg.Storage.Backend).Info("Upload function ready")
	lambda.Start(handler.New(store, log).Handle)
}
