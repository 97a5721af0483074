package httpapi

import (
	"net/http"
	"testing"
	"time"
)

func TestNewServerTimeouts(t *testing.T) {
	srv := NewServer(":3003", http.NotFoundHandler())

	if srv.Addr != ":3003" {
		t.Errorf("Addr = %q, want %q", srv.Addr, ":3003")
	}
	if srv.Handler == nil {
		t.Error("Handler is nil")
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"ReadHeaderTimeout", srv.ReadHeaderTimeout, ReadHeaderTimeout},
		{"ReadTimeout", srv.ReadTimeout, ReadTimeout},
		{"WriteTimeout", srv.WriteTimeout, WriteTimeout},
		{"IdleTimeout", srv.IdleTimeout, IdleTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
			if tt.got.(time.Duration) <= 0 {
				t.Error("timeout is unset")
			}
		})
	}
}
