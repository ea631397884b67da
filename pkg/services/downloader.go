package services

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kerbaras/gallery/pkg/metrics"
)

// ImageData is a fetched card image.
type ImageData struct {
	URL         string
	Content     []byte
	ContentType string
}

// ImageLoader fetches card images. Loads are independent of each other and
// complete in no particular order.
type ImageLoader struct {
	client  *http.Client
	metrics *metrics.Manager
}

// NewImageLoader creates a loader on the default client. metrics may be nil.
func NewImageLoader(m *metrics.Manager) *ImageLoader {
	return &ImageLoader{client: http.DefaultClient, metrics: m}
}

// Load downloads one image. A non-200 response is an error.
func (l *ImageLoader) Load(ctx context.Context, url string) (ImageData, error) {
	data, err := l.load(ctx, url)
	l.metrics.ImageLoaded(err)
	return data, err
}

func (l *ImageLoader) load(ctx context.Context, url string) (ImageData, error) {
	if url == "" {
		return ImageData{}, fmt.Errorf("image url is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ImageData{}, fmt.Errorf("bad status: %s", resp.Status)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImageData{}, fmt.Errorf("failed to read image content: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return ImageData{
		URL:         url,
		Content:     content,
		ContentType: contentType,
	}, nil
}
