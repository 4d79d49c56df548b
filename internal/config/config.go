// Package config handles viewer and exporter settings.
package config

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/preview"
)

// Config holds all mesh tool settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	MSAA       int  `yaml:"msaa"` // samples per pixel, 0 disables
}

// ViewerConfig holds the interactive mesh viewer settings.
type ViewerConfig struct {
	Catalog string `yaml:"catalog"` // shape catalog to display
	// CycleInterval advances to the next shape automatically; zero disables it.
	CycleInterval time.Duration `yaml:"cycle_interval"`
	Wireframe     bool          `yaml:"wireframe"`
	ShowGrid      bool          `yaml:"show_grid"`
	ShowBounds    bool          `yaml:"show_bounds"`
	ShowFPS       bool          `yaml:"show_fps"`
	FOV           float32       `yaml:"fov"`         // degrees
	OrbitSpeed    float32       `yaml:"orbit_speed"` // degrees per pixel dragged
	ZoomStep      float32       `yaml:"zoom_step"`   // distance factor per wheel notch
	ScreenshotDir string        `yaml:"screenshot_dir"`
}

// ExportConfig holds defaults for meshgen output.
type ExportConfig struct {
	OutputDir   string `yaml:"output_dir"`
	DoubleSided bool   `yaml:"double_sided"`
	PreviewSize int    `yaml:"preview_size"`
	PreviewView string `yaml:"preview_view"` // top, side or front
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
	JSON    bool   `yaml:"json"`
}

// LoggerOptions converts the logging section for logger.Setup. Console
// output is always on; the file rotates with the default limits.
func (l LoggingConfig) LoggerOptions() logger.Options {
	opts := logger.Options{Level: l.Level, Console: true}
	if l.LogFile != "" {
		opts.File = logger.DefaultFileConfig(l.LogFile)
		opts.File.JSON = l.JSON
	}
	return opts
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			MSAA:       4,
		},
		Viewer: ViewerConfig{
			Catalog:       "shapes.yaml",
			CycleInterval: 0,
			ShowGrid:      true,
			FOV:           60,
			OrbitSpeed:    0.3,
			ZoomStep:      1.1,
			ScreenshotDir: "screenshots",
		},
		Export: ExportConfig{
			OutputDir:   ".",
			PreviewSize: 512,
			PreviewView: "top",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return errors.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FPSLimit < 0:
		return errors.Errorf("graphics: negative fps_limit %d", c.Graphics.FPSLimit)
	case c.Graphics.MSAA < 0:
		return errors.Errorf("graphics: negative msaa %d", c.Graphics.MSAA)
	case c.Viewer.CycleInterval < 0:
		return errors.Errorf("viewer: negative cycle_interval %s", c.Viewer.CycleInterval)
	case c.Viewer.FOV <= 0 || c.Viewer.FOV >= 180:
		return errors.Errorf("viewer: fov %g out of range (0, 180)", c.Viewer.FOV)
	case c.Viewer.ZoomStep <= 1:
		return errors.Errorf("viewer: zoom_step %g must exceed 1", c.Viewer.ZoomStep)
	case c.Export.PreviewSize <= 0:
		return errors.Errorf("export: invalid preview_size %d", c.Export.PreviewSize)
	}
	if _, err := preview.ParseView(c.Export.PreviewView); err != nil {
		return errors.Wrap(err, "export")
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "logging")
	}
	return nil
}
