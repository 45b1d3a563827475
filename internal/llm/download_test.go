package llm

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDownloadReturnsBody(t *testing.T) {
	payload := []byte("binary attachment payload")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	data, err := NewDownloader().Download(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Download() failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("got %q, want %q", data, payload)
	}
}

func TestDownloadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := NewDownloader().Download(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestDownloadCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDownloader().Download(ctx, "http://127.0.0.1:1/file"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
