package sources

import (
	"context"

	"github.com/kerbaras/gallery/pkg/data"
)

// Source produces the listing a gallery is rendered from.
type Source interface {
	Fetch(ctx context.Context) (*data.Content, error)
}
