package cmd

import (
	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/services"
	"github.com/kerbaras/gallery/pkg/sources"
	"github.com/spf13/cobra"
)

// newController opens the snapshot store at the configured path.
func newController() (*services.GalleryController, error) {
	repo, err := data.NewDuckDBRepository(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	source := sources.NewRickAndMorty()
	return services.NewGalleryController(source, repo, source.URL(), logger), nil
}

// loadContent returns the stored snapshot named by --snapshot, or the live
// listing when the flag is unset.
func loadContent(cmd *cobra.Command) (*data.Content, error) {
	snapshotID, _ := cmd.Flags().GetString("snapshot")
	if !cmd.Flags().Changed("snapshot") {
		source := sources.NewRickAndMorty()
		return services.NewGalleryController(source, nil, source.URL(), logger).Fetch(cmd.Context())
	}

	controller, err := newController()
	if err != nil {
		return nil, err
	}
	defer controller.Close()

	snapshot, err := controller.Stored(snapshotID)
	if err != nil {
		return nil, err
	}
	return snapshot.Content(), nil
}

func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
