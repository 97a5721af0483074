package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/radar-speed-sign/video_uploads/internal/model"
)

func TestUploadResponseJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(model.UploadResponse{Message: "Successfully uploaded a.mp4"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"message":"Successfully uploaded a.mp4"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestGeneratedKey(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"epoch", time.UnixMilli(0), "vid_uploaded_0.mp4"},
		{"millis", time.UnixMilli(1729339200123), "vid_uploaded_1729339200123.mp4"},
		{"sub-millisecond truncated", time.Unix(1, 999_999), "vid_uploaded_1000.mp4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.GeneratedKey(tt.at); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneratedKeyDistinctAcrossMilliseconds(t *testing.T) {
	base := time.UnixMilli(1729339200000)
	a := model.GeneratedKey(base)
	b := model.GeneratedKey(base.Add(time.Millisecond))
	if a == b {
		t.Errorf("expected distinct keys, both %q", a)
	}
}

func TestNewStoredObject(t *testing.T) {
	obj := model.NewStoredObject("clip.mov", []byte{1, 2, 3}, "video/quicktime")

	if obj.Bucket != model.BucketName {
		t.Errorf("Bucket = %q, want %q", obj.Bucket, model.BucketName)
	}
	if obj.Key != "clip.mov" {
		t.Errorf("Key = %q, want %q", obj.Key, "clip.mov")
	}
	if obj.ContentType != "video/quicktime" {
		t.Errorf("ContentType = %q, want %q", obj.ContentType, "video/quicktime")
	}
	if got := obj.Metadata[model.MetadataContentType]; got != "video/quicktime" {
		t.Errorf("Metadata[contentType] = %q, want %q", got, "video/quicktime")
	}
	if len(obj.Metadata) != 1 {
		t.Errorf("Metadata has %d entries, want 1", len(obj.Metadata))
	}
}

func TestConstraintConstants(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"BucketName", model.BucketName, "radar-speed-sign"},
		{"DefaultContentType", model.DefaultContentType, "video/mp4"},
		{"MetadataContentType", model.MetadataContentType, "contentType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, want %q", tt.got, tt.expected)
			}
		})
	}
}
