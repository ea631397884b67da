package sources

import (
	"context"
	"fmt"

	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/utils"
)

// Endpoint is the character listing the gallery is built from.
const Endpoint = "https://rickandmortyapi.com/api/character/"

// RickAndMorty fetches the first page of the character listing. It does not
// retry, paginate or cache.
type RickAndMorty struct {
	api *utils.API
}

func NewRickAndMorty() *RickAndMorty {
	return NewRickAndMortyWithURL(Endpoint)
}

// NewRickAndMortyWithURL points the fetcher at another listing URL.
func NewRickAndMortyWithURL(url string) *RickAndMorty {
	return &RickAndMorty{api: utils.NewAPI(url)}
}

// URL returns the listing URL the fetcher requests.
func (r *RickAndMorty) URL() string {
	return r.api.BaseURL()
}

// Fetch issues one GET and decodes the body. The result is not validated.
func (r *RickAndMorty) Fetch(ctx context.Context) (*data.Content, error) {
	var content data.Content
	if err := r.api.Get(ctx, "", nil, &content); err != nil {
		return nil, fmt.Errorf("fetch characters: %w", err)
	}
	return &content, nil
}
