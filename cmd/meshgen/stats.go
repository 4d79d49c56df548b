package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/pkg/geometry"
)

func newStatsCmd(a *app) *cobra.Command {
	var only []string
	cmd := &cobra.Command{
		Use:   "stats <catalog>",
		Short: "Print vertex, index and triangle counts with bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args[0], only)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tKIND\tVERTS\tINDICES\tTRIS\tMINS\tMAXS")
			var verts, tris int
			for _, it := range items {
				b := geometry.GetVertexBounds3D(it.Mesh.Vertices)
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.3g %.3g %.3g\t%.3g %.3g %.3g\n",
					it.Name, it.Kind, len(it.Mesh.Vertices), len(it.Mesh.Indices), it.Mesh.TriangleCount(),
					b.Mins.X, b.Mins.Y, b.Mins.Z, b.Maxs.X, b.Maxs.Y, b.Maxs.Z)
				verts += len(it.Mesh.Vertices)
				tris += it.Mesh.TriangleCount()
			}
			fmt.Fprintf(tw, "total\t\t%d\t\t%d\t\t\n", verts, tris)
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&only, "only", nil, "Only include the named shapes")
	return cmd
}
