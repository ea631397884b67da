package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/sources"
	"go.uber.org/zap"
)

// ErrNoSnapshots is returned when the latest snapshot is asked for and none
// has been stored.
var ErrNoSnapshots = errors.New("no snapshots stored")

// SnapshotStore is the part of the repository the controller needs.
type SnapshotStore interface {
	SaveSnapshot(snapshot *data.Snapshot) error
	GetSnapshot(id string) (*data.Snapshot, error)
	LatestSnapshot() (*data.Snapshot, error)
	ListSnapshots() ([]*data.Snapshot, error)
	CountCharacters(snapshotID string) (int, error)
	DeleteSnapshot(id string) error
	Close() error
}

// GalleryController ties the fetcher to the snapshot store for the CLI.
type GalleryController struct {
	source   sources.Source
	repo     SnapshotStore
	endpoint string
	logger   *zap.Logger
	now      func() time.Time
}

func NewGalleryController(source sources.Source, repo SnapshotStore, endpoint string, logger *zap.Logger) *GalleryController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GalleryController{
		source:   source,
		repo:     repo,
		endpoint: endpoint,
		logger:   logger,
		now:      time.Now,
	}
}

// Fetch returns the live listing.
func (c *GalleryController) Fetch(ctx context.Context) (*data.Content, error) {
	return c.source.Fetch(ctx)
}

// Snapshot fetches the listing once and stores it.
func (c *GalleryController) Snapshot(ctx context.Context) (*data.Snapshot, error) {
	content, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &data.Snapshot{
		ID:         uuid.NewString(),
		TakenAt:    c.now(),
		Endpoint:   c.endpoint,
		Characters: content.Results,
	}
	if err := c.repo.SaveSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	c.logger.Info("Stored snapshot",
		zap.String("id", snapshot.ID),
		zap.Int("characters", len(snapshot.Characters)))
	return snapshot, nil
}

// Stored returns the snapshot with id, or the latest one when id is "latest"
// or empty.
func (c *GalleryController) Stored(id string) (*data.Snapshot, error) {
	var (
		snapshot *data.Snapshot
		err      error
	)
	if id == "" || id == "latest" {
		snapshot, err = c.repo.LatestSnapshot()
	} else {
		snapshot, err = c.repo.GetSnapshot(id)
	}
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		if id == "" || id == "latest" {
			return nil, ErrNoSnapshots
		}
		return nil, fmt.Errorf("snapshot %q not found", id)
	}
	return snapshot, nil
}

// History lists stored snapshots, newest first.
func (c *GalleryController) History() ([]*data.Snapshot, error) {
	return c.repo.ListSnapshots()
}

// Count returns how many characters a stored snapshot holds.
func (c *GalleryController) Count(id string) (int, error) {
	return c.repo.CountCharacters(id)
}

// Delete removes a stored snapshot. Deleting an unknown id is an error.
func (c *GalleryController) Delete(id string) error {
	snapshot, err := c.repo.GetSnapshot(id)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("snapshot %q not found", id)
	}
	if err := c.repo.DeleteSnapshot(id); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	c.logger.Info("Deleted snapshot", zap.String("id", id))
	return nil
}

func (c *GalleryController) Close() error {
	if c.repo == nil {
		return nil
	}
	return c.repo.Close()
}
