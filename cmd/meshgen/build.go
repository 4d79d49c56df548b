package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/export"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
)

func newBuildCmd(a *app) *cobra.Command {
	var (
		output      string
		only        []string
		doubleSided bool
	)
	cmd := &cobra.Command{
		Use:   "build <catalog>",
		Short: "Write the catalog as a glTF file (.gltf or .glb)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args[0], only)
			if err != nil {
				return err
			}
			if output == "" {
				output = defaultOutput(a.cfg.Export.OutputDir, args[0], ".glb")
			}
			opts := export.Options{
				DoubleSided: doubleSided || a.cfg.Export.DoubleSided,
			}
			if err := export.Save(output, items, opts); err != nil {
				return err
			}
			logger.Info("wrote gltf", zap.String("path", output), zap.Int("meshes", len(items)))
			cmd.Printf("wrote %d meshes to %s\n", len(items), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default <output_dir>/<catalog>.glb)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only include the named shapes")
	cmd.Flags().BoolVar(&doubleSided, "double-sided", false, "Mark the material double sided")
	return cmd
}

// defaultOutput names the output after the catalog file.
func defaultOutput(dir, catalogPath, ext string) string {
	base := filepath.Base(catalogPath)
	base = base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(dir, base+ext)
}
