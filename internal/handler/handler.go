package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/radar-speed-sign/video_uploads/internal/model"
	"github.com/radar-speed-sign/video_uploads/internal/storage"
	"github.com/sirupsen/logrus"
)

// UploadHandler decodes a base64 video body and writes it to the upload
// bucket in a single store call.
type UploadHandler struct {
	store storage.ObjectStore
	log   *logrus.Logger
	now   func() time.Time
}

// Option configures an UploadHandler.
type Option func(*UploadHandler)

// WithClock overrides the time source used for generated keys.
func WithClock(now func() time.Time) Option {
	return func(h *UploadHandler) {
		h.now = now
	}
}

// New returns a handler writing through store.
func New(store storage.ObjectStore, log *logrus.Logger, opts ...Option) *UploadHandler {
	h := &UploadHandler{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the Lambda entrypoint for API Gateway proxy events. It never
// returns a non-nil error: failures are reported through the status code.
func (h *UploadHandler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (resp events.APIGatewayProxyResponse, err error) {
	log := h.log.WithField("request_id", requestID(ctx, req))
	log.WithField("started_at", h.now().Format(time.RFC3339)).Info("Upload request received")

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("Upload failed")
			resp, err = respond(http.StatusInternalServerError, FormatInternalError(r)), nil
		}
	}()

	upload := parseRequest(req)
	if upload.Body == "" {
		log.Warn("Rejected upload with empty body")
		return respond(http.StatusBadRequest, MsgNoVideoData), nil
	}

	key := upload.FileName
	if !upload.HasFileName {
		key = model.GeneratedKey(h.now())
	}

	data, err := decodeBody(upload.Body)
	if err != nil {
		log.WithError(err).Error("Failed to decode video body")
		return respond(http.StatusInternalServerError, FormatError(err)), nil
	}

	entry := log.WithFields(logrus.Fields{
		"key":          key,
		"content_type": upload.ContentType,
		"size":         len(data),
	})
	entry.Info("Uploading video")

	if err := h.store.PutObject(ctx, model.NewStoredObject(key, data, upload.ContentType)); err != nil {
		entry.WithError(err).Error("Upload failed")
		return respond(http.StatusInternalServerError, FormatError(err)), nil
	}

	entry.Info("Upload complete")
	return respond(http.StatusOK, successMessage(key)), nil
}

func respond(status int, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(model.UploadResponse{Message: message})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
