package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/radial-offset/internal/config"
	"github.com/Faultbox/radial-offset/internal/logger"
	"github.com/Faultbox/radial-offset/internal/radial"
)

func newInfoCmd() *cobra.Command {
	var selection string

	cmd := &cobra.Command{
		Use:   "info <in.obj>",
		Short: "Show mesh statistics and the reference point for each mode",
		Args:  cobra.ExactArgs(1),
	}
	flags := config.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&selection, "select", "all", `Vertices to consider, e.g. "0-3,7" or "all"`)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return err
		}

		sess, err := openSession(cfg, args[0], selection)
		if err != nil {
			return err
		}
		o := sess.scene.Active
		m := o.Mesh
		sel := m.Selected()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Mesh:      %s\n", m.Name)
		fmt.Fprintf(out, "Vertices:  %d\n", m.VertexCount())
		fmt.Fprintf(out, "Faces:     %d\n", len(m.Faces))
		fmt.Fprintf(out, "Selected:  %d\n", len(sel))
		if lo, hi, ok := m.Bounds(sel); ok {
			fmt.Fprintf(out, "Bounds:    %s .. %s\n", formatVec(lo), formatVec(hi))
		}
		set := settingsFromConfig(cfg)
		fmt.Fprintf(out, "Offset:    %s (axes %s)\n", formatVec(set.Offset), radial.BuildMask(set.Offset))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Reference points:")

		cursor, cerr := o.WorldToLocal(sess.scene.Cursor)
		positions := m.Positions(sel)
		for _, mode := range []radial.Mode{radial.ModeObject, radial.ModeBounding, radial.ModeCustom, radial.ModeCursor} {
			marker := " "
			if mode == cfg.Offset.Point {
				marker = "*"
			}

			ref, err := radial.NewReference(mode, set.Custom, &cursor)
			if err == nil && mode == radial.ModeCursor && cerr != nil {
				err = cerr
			}
			if err != nil {
				fmt.Fprintf(out, " %s %-9s n/a (%v)\n", marker, mode, err)
				continue
			}
			p, err := ref.Resolve(positions)
			if err != nil {
				fmt.Fprintf(out, " %s %-9s n/a (%v)\n", marker, mode, err)
				continue
			}
			fmt.Fprintf(out, " %s %-9s %s\n", marker, mode, formatVec(p))
		}
		return nil
	}
	return cmd
}
