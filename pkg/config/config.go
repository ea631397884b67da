// Package config defines the gallery configuration and how it is loaded.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile receives logs of the interactive gallery. Empty disables them.
	LogFile string `koanf:"log_file"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath is the DuckDB file snapshots are stored in.
	DBPath string `koanf:"db_path"`

	// Output is where `build` writes the generated page.
	Output string `koanf:"output"`

	// EPubOutput is where `epub` writes the book.
	EPubOutput string `koanf:"epub_output"`

	// ThumbWidth is the width in cells of terminal card images.
	ThumbWidth int `koanf:"thumb_width"`
}

// New returns a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		Addr:       ":8080",
		DBPath:     "gallery.db",
		Output:     "dist/index.html",
		EPubOutput: "gallery.epub",
		ThumbWidth: 24,
	}
}
