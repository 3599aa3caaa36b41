package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvcluster",
		Short:         "Distance-ordered clustering of integer points",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())

	return root
}
