package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/kerbaras/gallery/pkg/sources"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const pageMode os.FileMode = 0644

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the gallery page as a static HTML file",
	Long:  "Fetch the characters once and write the gallery page. Nothing is written if the fetch fails.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = cfg.Output
		}

		gen := gallery.NewGenerator(sources.NewRickAndMorty(), nil, logger)
		if err := writePage(cmd, gen, output); err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		logger.Info("Wrote gallery page", zap.String("path", output))
		fmt.Printf("✅ Gallery written to %s\n", output)
		return nil
	},
}

// writePage renders into a temp file next to output and renames it into
// place, so output is either the previous page or a complete new one.
func writePage(cmd *cobra.Command, gen *gallery.Generator, output string) (err error) {
	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gallery-*.html")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := gen.Generate(cmd.Context(), tmp); err != nil {
		return err
	}
	// CreateTemp opens the file 0600; the page must stay readable by others.
	if err := tmp.Chmod(pageMode); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), output)
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "file to write the page to")
}
