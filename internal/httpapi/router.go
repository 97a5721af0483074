// Package httpapi serves the upload handler over plain HTTP for local runs
// against MinIO, translating requests into API Gateway proxy events.
package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/radar-speed-sign/video_uploads/internal/handler"
	"github.com/sirupsen/logrus"
)

const (
	// UploadPath is the route of the upload endpoint.
	UploadPath = "/upload-video"
	// RequestIDHeader carries the per-request id, generated when absent.
	RequestIDHeader = "X-Request-Id"
	// MaxBodyBytes matches the API Gateway payload limit.
	MaxBodyBytes = 10 << 20
)

// NewRouter routes POST UploadPath to h.
func NewRouter(h *handler.UploadHandler, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID)
	r.Handle(UploadPath, uploadEndpoint(h, log)).Methods(http.MethodPost)
	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func uploadEndpoint(h *handler.UploadHandler, log *logrus.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				log.WithField("limit", tooLarge.Limit).Warn("Rejected oversized request body")
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			log.WithError(err).Error("Error reading request body")
			http.Error(w, "Error reading request body", http.StatusBadRequest)
			return
		}

		resp, _ := h.Handle(r.Context(), toProxyRequest(r, body))

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		io.WriteString(w, resp.Body)
	})
}

// toProxyRequest keeps only the first value of repeated headers and query
// parameters, matching the single-value maps of the proxy event.
func toProxyRequest(r *http.Request, body []byte) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(r.Header))
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers[k] = vs[0]
		}
	}

	query := r.URL.Query()
	params := make(map[string]string, len(query))
	for k, vs := range query {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}

	return events.APIGatewayProxyRequest{
		Resource:              UploadPath,
		Path:                  r.URL.Path,
		HTTPMethod:            r.Method,
		Headers:               headers,
		QueryStringParameters: params,
		Body:                  string(body),
		RequestContext: events.APIGatewayProxyRequestContext{
			RequestID:  r.Header.Get(RequestIDHeader),
			HTTPMethod: r.Method,
		},
	}
}
