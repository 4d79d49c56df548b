package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "dump <catalog> <shape>",
		Short: "Print the raw vertex and index buffers of one shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(args[0], args[1:])
			if err != nil {
				return err
			}
			mesh := items[0].Mesh

			verts, indices := mesh.Vertices, mesh.Indices
			if limit > 0 {
				verts = verts[:min(limit, len(verts))]
				indices = indices[:min(limit*3, len(indices))]
			}

			cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s): %d vertices, %d indices\n", items[0].Name, items[0].Kind, len(mesh.Vertices), len(mesh.Indices))
			cfg.Fdump(out, verts)
			if len(indices) > 0 {
				cfg.Fdump(out, indices)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 8, "Vertices to print, 0 for all")
	return cmd
}
