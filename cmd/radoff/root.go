package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "radoff",
		Short: "Radially offset mesh vertices",
		Long: `radoff pushes selected vertices away from (or toward) a reference point
along their radial direction, per axis, keeping their relative spacing.
An axis with a zero offset is left exactly as it was.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newApplyCmd(), newInfoCmd(), newConfigCmd())
	return root
}
