// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gviegas/orrery/draw"
	"github.com/gviegas/orrery/linear"
	"github.com/gviegas/orrery/node"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the scene graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.build()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Graph.Describe())
			return err
		},
	}
}

func newStepCmd(a *app) *cobra.Command {
	var (
		frames int
		dt     float32
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Animate the orbits and print geometry positions per frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames < 0 {
				return fmt.Errorf("invalid --frames %d", frames)
			}
			s, err := a.build()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			geoms := s.Graph.Geometries()
			for f := 1; f <= frames; f++ {
				t := float32(f) * dt
				s.Anim.Step(t)
				a.log.Debug("frame", "n", f, "t", t)
				for _, n := range geoms {
					p := n.World().Translation()
					if _, err := fmt.Fprintf(w, "%d\t%.3f\t%s\t%.4f\t%.4f\t%.4f\n", f, t, n.Name(), p[0], p[1], p[2]); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "number of frames")
	cmd.Flags().Float32Var(&dt, "dt", 1.0/60, "seconds between frames")
	return cmd
}

func newDrawCmd(a *app) *cobra.Command {
	var (
		frames int
		dt     float32
	)
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Animate the orbits and print the draw list per frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames < 0 {
				return fmt.Errorf("invalid --frames %d", frames)
			}
			s, err := a.build()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for f := 1; f <= frames; f++ {
				t := float32(f) * dt
				s.Anim.Step(t)
				view, _, ok := draw.Camera(s.Graph)
				if !ok {
					return errors.New("no enabled camera")
				}
				ds := draw.Collect(s.Graph, &view)
				ls := draw.Lights(s.Graph)
				a.log.Debug("draw list", "frame", f, "drawables", len(ds), "lights", len(ls))
				if err := printFrame(w, f, t, ds, ls); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 1, "number of frames")
	cmd.Flags().Float32Var(&dt, "dt", 1.0/60, "seconds between frames")
	return cmd
}

// printFrame writes one line per drawable and light.
// Drawables are followed by their world position and
// texture unit, lights by their world position and
// intensity.
func printFrame(w io.Writer, frame int, t float32, ds []draw.Drawable, ls []draw.PointLight) error {
	for i := range ds {
		p := ds[i].World.Translation()
		if _, err := fmt.Fprintf(w, "%d\t%.3f\tgeometry\t%s\t%.4f\t%.4f\t%.4f\t%d\n",
			frame, t, ds[i].Node.Name(), p[0], p[1], p[2], ds[i].Unit); err != nil {
			return err
		}
	}
	for i := range ls {
		p := ls[i].Position
		if _, err := fmt.Fprintf(w, "%d\t%.3f\tlight\t%s\t%.4f\t%.4f\t%.4f\t%.2f\n",
			frame, t, ls[i].Node.Name(), p[0], p[1], p[2], ls[i].Intensity); err != nil {
			return err
		}
	}
	return nil
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find path",
		Short: "Print a node identified by its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.build()
			if err != nil {
				return err
			}
			n, err := s.Graph.Lookup(args[0])
			if err != nil {
				return err
			}
			return printNode(cmd.OutOrStdout(), n)
		},
	}
}

func printNode(w io.Writer, n *node.Node) error {
	m := n.World()
	_, err := fmt.Fprintf(w, "name: %s\npath: %s\ndepth: %d\nkind: %s\nworld:\n%s",
		n.Name(), n.Path(), n.Depth(), n.Kind(), formatM4(&m))
	return err
}

// formatM4 writes m in row order, one row per line.
func formatM4(m *linear.M4) (s string) {
	for j := range m[0] {
		s += fmt.Sprintf("\t%9.4f %9.4f %9.4f %9.4f\n", m[0][j], m[1][j], m[2][j], m[3][j])
	}
	return
}
