package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xuanchaix/CustomGameEngineWithGames-sub006/internal/catalog"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List shape kinds and the parameters they read",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			kinds := catalog.Kinds()

			maxKind := len("KIND")
			for _, k := range kinds {
				maxKind = max(maxKind, len(k.Kind))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-*s  %-3s  %-7s  %-5s  %s\n", maxKind, "KIND", "DIM", "INDEXED", "WIRED", "PARAMS")
			for _, k := range kinds {
				dim := "2d"
				if k.Is3D {
					dim = "3d"
				}
				fmt.Fprintf(out, "%-*s  %-3s  %-7s  %-5s  %s\n",
					maxKind, k.Kind, dim, yesNo(k.Indexed), yesNo(k.Wired), strings.Join(k.Params, ", "))
			}
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
