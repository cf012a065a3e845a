package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxImageBytes caps downloads of avatars and card backgrounds.
const maxImageBytes = 8 << 20

// ImageFetcher downloads images for the rank card renderer.
type ImageFetcher struct {
	client *http.Client
}

func NewImageFetcher() *ImageFetcher {
	return &ImageFetcher{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchBytes downloads a URL and returns its body.
func (f *ImageFetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	return data, nil
}
