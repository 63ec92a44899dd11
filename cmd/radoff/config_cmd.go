package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/radial-offset/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the radoff config file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config",
		Long:  "Writes the default config to path, or to " + config.FileName + " in the user config directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if len(args) == 0 {
				if err := cfg.Save(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s/%s\n", config.ConfigDir(), config.FileName)
				return nil
			}
			if err := cfg.SaveTo(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", args[0])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
	}
	flags := config.BindFlags(showCmd.Flags())
	showCmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
