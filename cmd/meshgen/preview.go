package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/preview"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		output  string
		only    []string
		view    string
		size    int
		noShade bool
	)
	cmd := &cobra.Command{
		Use:   "preview <catalog>",
		Short: "Rasterize the catalog into an orthographic PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args[0], only)
			if err != nil {
				return err
			}

			if view == "" {
				view = a.cfg.Export.PreviewView
			}
			v, err := preview.ParseView(view)
			if err != nil {
				return err
			}
			if size <= 0 {
				size = a.cfg.Export.PreviewSize
			}
			if output == "" {
				output = defaultOutput(a.cfg.Export.OutputDir, args[0], ".png")
			}

			opts := preview.DefaultOptions()
			opts.Width, opts.Height = size, size
			opts.View = v
			opts.Shade = !noShade

			meshes := make([]*geometry.Mesh[geometry.VertexPCUTBN], len(items))
			for i := range items {
				meshes[i] = &items[i].Mesh
			}
			if err := preview.Save(output, meshes, opts); err != nil {
				return err
			}
			logger.Info("wrote preview", zap.String("path", output), zap.String("view", view), zap.Int("size", size))
			cmd.Printf("wrote %dx%d %s view to %s\n", size, size, view, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG (default <output_dir>/<catalog>.png)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only include the named shapes")
	cmd.Flags().StringVar(&view, "view", "", "Projection: top, side or front")
	cmd.Flags().IntVar(&size, "size", 0, "Image width and height in pixels")
	cmd.Flags().BoolVar(&noShade, "flat", false, "Disable facing-based shading")
	return cmd
}
