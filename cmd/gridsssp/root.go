package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridsssp",
		Short:         "Shortest paths over 2D/3D lattice graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSolveCmd(), newGenCmd())

	return root
}
