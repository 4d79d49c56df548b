// meshview displays a shape catalog in an interactive OpenGL window.
//
// Controls:
//
//	left drag        orbit
//	wheel            zoom
//	left/right, n/p  previous/next shape
//	w g b            toggle wireframe, grid, bounds
//	l                cycle shading: unlit, lit, normals, tangents, uv
//	space            pause automatic cycling
//	f                refit the camera
//	F12              screenshot
//	esc              quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/config"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/viewer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags *config.Flags
	cmd := &cobra.Command{
		Use:          "meshview [catalog]",
		Short:        "View a shape catalog interactively",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				flags.Catalog = args[0]
			}
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Logging.LoggerOptions()); err != nil {
				return err
			}
			defer logger.Sync()

			logger.Info("=== meshview ===")
			logger.Sugar.Debugf("config: %+v", cfg)

			items, err := loadCatalog(cfg.Viewer.Catalog)
			if err != nil {
				return err
			}

			v, err := viewer.New(cfg, items)
			if err != nil {
				logger.Error("failed to create viewer", zap.Error(err))
				return err
			}
			defer v.Close()

			if err := v.Run(); err != nil {
				logger.Error("viewer error", zap.Error(err))
				return err
			}
			logger.Info("viewer closed normally")
			return nil
		},
	}
	flags = config.BindFlags(cmd.Flags())
	flags.BindViewerFlags(cmd.Flags())
	return cmd
}

func loadCatalog(path string) ([]catalog.Item, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	items, err := cat.Build()
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", zap.String("path", path), zap.String("name", cat.Name), zap.Int("shapes", len(items)))
	return items, nil
}
