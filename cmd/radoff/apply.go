package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/radial-offset/internal/config"
	"github.com/Faultbox/radial-offset/internal/editor"
	"github.com/Faultbox/radial-offset/internal/logger"
	"github.com/Faultbox/radial-offset/internal/metrics"
	"github.com/Faultbox/radial-offset/internal/radial"
	"github.com/Faultbox/radial-offset/pkg/formats"
	"github.com/Faultbox/radial-offset/pkg/math"
	"github.com/Faultbox/radial-offset/pkg/mesh"
)

func newApplyCmd() *cobra.Command {
	var (
		output    string
		selection string
	)

	cmd := &cobra.Command{
		Use:   "apply <in.obj>",
		Short: "Offset the selected vertices and write the result",
		Example: `  radoff apply ring.obj --select 0-7 --offset 0.1,0.1,0 -o ring-wide.obj
  radoff apply ring.obj --point bounding --offset 0,0,-0.5
  radoff apply ring.obj --point custom --custom 1,0,0 --offset 0.2,0.2,0.2`,
		Args: cobra.ExactArgs(1),
	}
	flags := config.BindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&selection, "select", "all", `Vertices to offset, e.g. "0-3,7" or "all"`)

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

		m := metrics.New()
		engine := radial.New(radial.WithLogger(logger.Named("radial")), radial.WithRecorder(m))
		op := editor.NewRadialOffset(engine, editor.NewHistory(1), logger.Named("editor"))

		if !op.Poll(sess.scene) {
			fmt.Fprintln(cmd.ErrOrStderr(), editor.PollMessage)
			return writeMetrics(cfg, m)
		}

		status, res, err := op.Execute(sess.scene, settingsFromConfig(cfg))
		if err != nil {
			if errors.Is(err, radial.ErrCancelled) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", status, err)
				return writeMetrics(cfg, m)
			}
			return err
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d of %d selected vertices moved (reference %s at %s)\n",
			status, res.Displaced(), len(res.Indices), cfg.Offset.Point, formatVec(res.Point))

		if output == "" {
			err = sess.obj.Write(cmd.OutOrStdout())
		} else {
			err = sess.obj.SaveTo(output)
		}
		if err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
		return writeMetrics(cfg, m)
	}
	return cmd
}

// session is a loaded mesh placed in a one-object scene.
type session struct {
	obj   *formats.OBJ
	scene *editor.Scene
}

func openSession(cfg *config.Config, path, selection string) (*session, error) {
	obj, err := formats.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	for _, w := range obj.Warnings {
		logger.Warn("obj", zap.String("file", path), zap.String("warning", w))
	}

	indices, err := mesh.ParseSelection(selection, obj.Mesh.VertexCount())
	if err != nil {
		return nil, err
	}
	if err := obj.Mesh.Select(indices...); err != nil {
		return nil, err
	}

	o := editor.NewObject(obj.Mesh.Name, obj.Mesh)
	o.Matrix = cfg.ObjectMatrix()
	scene := editor.NewScene(o)
	scene.Cursor = math.FromArray(cfg.Scene.Cursor)

	logger.Debug("mesh loaded",
		zap.String("file", path),
		zap.Int("vertices", obj.Mesh.VertexCount()),
		zap.Int("faces", len(obj.Mesh.Faces)),
		zap.Int("selected", len(indices)))
	return &session{obj: obj, scene: scene}, nil
}

func settingsFromConfig(cfg *config.Config) editor.Settings {
	s := editor.Settings{
		Offset: math.FromArray(cfg.Offset.Distance),
		Point:  cfg.Offset.Point,
	}
	if cfg.Offset.Custom != nil {
		p := math.FromArray(*cfg.Offset.Custom)
		s.Custom = &p
	}
	return s
}

func writeMetrics(cfg *config.Config, m *metrics.Metrics) error {
	if cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
