package main

import (
	"context"

	"github.com/radar-speed-sign/video_uploads/internal/config"
	"github.com/radar-speed-sign/video_uploads/internal/handler"
	"github.com/radar-speed-sign/video_uploads/internal/httpapi"
	"github.com/radar-speed-sign/video_uploads/internal/logger"
	"github.com/radar-speed-sign/video_uploads/internal/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	store, err := storage.New(context.Background(), cfg.Storage, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize object store")
	}

	router := httpapi.NewRouter(handler.New(store, log), log)

	addr := ":" + cfg.Server.Port
	log.WithFields(logrus.Fields{
		"addr":    addr,
		"backend": cfg.Storage.Backend,
		"path":    httpapi.UploadPath,
	}).Info("Local upload server listening")
	if err := httpapi.NewServer(addr, router).ListenAndServe(); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
