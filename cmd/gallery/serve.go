package cmd

import (
	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/kerbaras/gallery/pkg/metrics"
	"github.com/kerbaras/gallery/pkg/server"
	"github.com/kerbaras/gallery/pkg/sources"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gallery page over HTTP",
	Long:  "Serve the gallery page, generated on every request, along with /healthz and /metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Addr
		}

		m := metrics.NewManager()
		gen := gallery.NewGenerator(sources.NewRickAndMorty(), m, logger)
		return server.New(gen, m, logger).ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address, e.g. :8080")
}
