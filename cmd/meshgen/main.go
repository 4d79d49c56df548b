// meshgen builds shape catalogs into glTF files and PNG previews.
//
// Usage:
//
//	meshgen kinds                          - List shape kinds and their parameters
//	meshgen build <catalog> -o out.glb     - Write every shape as a glTF mesh
//	meshgen preview <catalog> -o out.png   - Rasterize the catalog to a PNG
//	meshgen stats <catalog>                - Print vertex and triangle counts
//	meshgen dump <catalog> <shape>         - Print the raw vertices of one shape
//
// Global flags:
//
//	--config <path>  - Config file (defaults: ./meshtools.yaml, user config dir)
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/config"
	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	flags *config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "meshgen",
		Short: "Generate procedural meshes from shape catalogs",
		Long: `meshgen reads a YAML catalog of shapes (discs, boxes, spheres, arrows...)
and writes them as glTF meshes or flat-shaded PNG previews.

Examples:
  meshgen kinds
  meshgen build shapes.yaml -o shapes.glb
  meshgen preview shapes.yaml -o shapes.png --view side
  meshgen dump shapes.yaml crate --limit 4`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.flags)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return logger.Setup(cfg.Logging.LoggerOptions())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newKindsCmd(),
		newBuildCmd(a),
		newPreviewCmd(a),
		newStatsCmd(a),
		newDumpCmd(a),
	)
	return root
}

// loadItems builds the catalog at path, keeping only the named shapes when
// only is non-empty.
func loadItems(path string, only []string) ([]catalog.Item, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	items, err := cat.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "building %s", path)
	}
	logger.Debug("catalog built", zap.String("path", path), zap.Int("shapes", len(items)))

	if len(only) == 0 {
		return items, nil
	}
	var out []catalog.Item
	for _, name := range only {
		idx := indexOf(items, name)
		if idx < 0 {
			return nil, errors.Errorf("no shape named %q in %s (have %s)", name, path, names(items))
		}
		out = append(out, items[idx])
	}
	return out, nil
}

func indexOf(items []catalog.Item, name string) int {
	for i := range items {
		if items[i].Name == name {
			return i
		}
	}
	return -1
}

func names(items []catalog.Item) string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].Name
	}
	return strings.Join(out, ", ")
}
