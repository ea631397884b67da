package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerbaras/gallery/pkg/app"
	"github.com/kerbaras/gallery/pkg/config"
	"github.com/kerbaras/gallery/pkg/integrations"
	"github.com/kerbaras/gallery/pkg/logging"
	"github.com/kerbaras/gallery/pkg/services"
	"github.com/kerbaras/gallery/pkg/sources"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	logLevel string
)

var rootCmd = &cobra.Command{
	Use:           "gallery",
	Short:         "A Rick and Morty character gallery",
	Long:          "Fetch the Rick and Morty characters and show them as cards in the terminal, as a web page, or as a book",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		// The terminal gallery owns the screen, so it only logs to a file.
		if cmd == cmd.Root() {
			logger, err = logging.NewFile(cfg.LogLevel, cfg.LogFile)
		} else {
			logger, err = logging.New(cfg.LogLevel)
		}
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		thumbWidth, _ := cmd.Flags().GetInt("thumb-width")
		if thumbWidth == 0 {
			thumbWidth = cfg.ThumbWidth
		}

		thumb := integrations.NewThumbnail(thumbWidth, thumbWidth/2)
		a := app.NewApp(sources.NewRickAndMorty(), services.NewImageLoader(nil), thumb, logger)
		return a.Run(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().Int("thumb-width", 0, "width in cells of card images")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(epubCmd)
}

// Execute runs the CLI until it finishes or receives an interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		cobra.CheckErr(err)
	}
}
