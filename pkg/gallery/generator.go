package gallery

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/metrics"
	"github.com/kerbaras/gallery/pkg/sources"
	"go.uber.org/zap"
)

// Generator runs the fetch-and-render pipeline for one page.
type Generator struct {
	source  sources.Source
	metrics *metrics.Manager
	logger  *zap.Logger
}

// NewGenerator wires a generator. metrics may be nil.
func NewGenerator(source sources.Source, m *metrics.Manager, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{source: source, metrics: m, logger: logger}
}

// Load fetches the listing the page is generated from.
func (g *Generator) Load(ctx context.Context) (*data.Content, error) {
	start := time.Now()
	content, err := g.source.Fetch(ctx)
	g.metrics.ObserveFetch(time.Since(start), err)
	if err != nil {
		g.logger.Error("Page generation failed", zap.Error(err))
		return nil, err
	}
	g.logger.Debug("Fetched characters",
		zap.Int("count", len(content.Results)),
		zap.Duration("took", time.Since(start)))
	return content, nil
}

// Generate fetches and renders a full page into w. Nothing is written unless
// both steps succeed.
func (g *Generator) Generate(ctx context.Context, w io.Writer) error {
	content, err := g.Load(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Page(content).Render(ctx, &buf); err != nil {
		return err
	}
	g.metrics.PageRendered(len(content.Results))

	_, err = buf.WriteTo(w)
	return err
}

// Generate runs the pipeline once without metrics or logging.
func Generate(ctx context.Context, source sources.Source, w io.Writer) error {
	return NewGenerator(source, nil, nil).Generate(ctx, w)
}
