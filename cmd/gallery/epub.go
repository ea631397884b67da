package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/gallery/pkg/integrations"
	"github.com/kerbaras/gallery/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var epubCmd = &cobra.Command{
	Use:   "epub",
	Short: "Generate an EPUB book of the gallery",
	Long:  "Render the characters, live or from a stored snapshot, as an EPUB with one section per card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.EPubOutput
		}
		title, _ := cmd.Flags().GetString("title")

		content, err := loadContent(cmd)
		if err != nil {
			return err
		}

		builder := integrations.NewEPubBuilder(filepath.Dir(output), services.NewImageLoader(nil), logger)
		builder.SetTitle(title)

		path, err := builder.Build(cmd.Context(), content, filepath.Base(output))
		if err != nil {
			return fmt.Errorf("epub failed: %w", err)
		}

		logger.Info("Wrote EPUB", zap.String("path", path), zap.Int("cards", len(content.Results)))
		fmt.Printf("📖 EPUB written to %s\n", path)
		return nil
	},
}

func init() {
	epubCmd.Flags().StringP("output", "o", "", "file to write the book to")
	epubCmd.Flags().String("title", "", "book title")
	epubCmd.Flags().String("snapshot", "", "read a stored snapshot id, or \"latest\", instead of fetching")
}
