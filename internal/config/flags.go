package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Zero values leave the loaded config alone.
type Flags struct {
	ConfigPath string
	Debug      bool
	Catalog    string
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Cycle      time.Duration
}

// BindFlags registers the flags every tool accepts on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging and the FPS counter")
	return f
}

// BindViewerFlags registers the window and viewer overrides on fs.
func (f *Flags) BindViewerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Catalog, "catalog", "", "Shape catalog to load")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.DurationVar(&f.Cycle, "cycle", 0, "Advance to the next shape at this interval")
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
		cfg.Viewer.ShowFPS = true
	}
	if f.Catalog != "" {
		cfg.Viewer.Catalog = f.Catalog
	}
	if f.Windowed {
		cfg.Graphics.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if f.Width > 0 {
		cfg.Graphics.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Graphics.Height = f.Height
	}
	if f.Cycle > 0 {
		cfg.Viewer.CycleInterval = f.Cycle
	}
}
