package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Downloader fetches raw bytes from an arbitrary URL. No timeout is applied
// beyond the caller's context.
type Downloader struct {
	client *http.Client
}

func NewDownloader() *Downloader {
	return &Downloader{client: &http.Client{}}
}

func (downloader *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := downloader.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("download status %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
