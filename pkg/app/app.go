// Package app is the interactive terminal gallery.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gallery/pkg/app/screens"
	"github.com/kerbaras/gallery/pkg/integrations"
	"github.com/kerbaras/gallery/pkg/sources"
	"go.uber.org/zap"
)

type App struct {
	source sources.Source
	images integrations.ImageFetcher
	thumb  *integrations.Thumbnail
	logger *zap.Logger
}

func NewApp(source sources.Source, images integrations.ImageFetcher, thumb *integrations.Thumbnail, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{source: source, images: images, thumb: thumb, logger: logger}
}

// Run blocks until the user quits. A failed fetch ends the program and is
// returned.
func (a *App) Run(ctx context.Context) error {
	model := screens.NewGalleryScreen(ctx, a.source, a.images, a.thumb, a.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if screen, ok := final.(*screens.GalleryScreen); ok {
		return screen.Err()
	}
	return nil
}
