package handler

import (
	"context"
	"encoding/base64"
	"maps"
	"slices"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/radar-speed-sign/video_uploads/internal/model"
)

// fileNameParams are checked in order; the first one present wins.
var fileNameParams = []string{"fileName", "filename"}

// base64Normalizer folds the URL-safe alphabet onto the standard one and
// drops ASCII whitespace.
var base64Normalizer = strings.NewReplacer(
	"-", "+",
	"_", "/",
	" ", "",
	"\t", "",
	"\n", "",
	"\r", "",
	"\f", "",
	"\v", "",
)

func parseRequest(req events.APIGatewayProxyRequest) model.UploadRequest {
	contentType := headerValue(req.Headers, "Content-Type")
	if contentType == "" {
		contentType = model.DefaultContentType
	}

	fileName, ok := queryFileName(req.QueryStringParameters)
	return model.UploadRequest{
		ContentType: contentType,
		Body:        req.Body,
		FileName:    fileName,
		HasFileName: ok,
	}
}

// decodeBody accepts padded or unpadded, standard or URL-safe base64 with
// embedded whitespace. Characters outside both alphabets are still an error.
func decodeBody(body string) ([]byte, error) {
	normalized := strings.TrimRight(base64Normalizer.Replace(body), "=")
	return base64.RawStdEncoding.DecodeString(normalized)
}

// headerValue prefers an exact-case match and falls back to the first
// case-insensitive one in sorted key order, since HTTP API payloads
// lowercase header names.
func headerValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for _, k := range slices.Sorted(maps.Keys(headers)) {
		if strings.EqualFold(k, name) {
			return headers[k]
		}
	}
	return ""
}

func queryFileName(params map[string]string) (string, bool) {
	for _, p := range fileNameParams {
		if v, ok := params[p]; ok {
			return v, true
		}
	}
	return "", false
}

func requestID(ctx context.Context, req events.APIGatewayProxyRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return req.RequestContext.RequestID
}
