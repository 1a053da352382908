package main

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/spatial"
)

func newNearestCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "nearest <x> <y>",
		Short: "Find the landmark nearest a map point",
		Long: `Find the landmark nearest a point in map layout space
(0..100 on both axes, origin top-left).

Examples:
  addisroute nearest 51 49          # Meskel Square
  addisroute nearest 100 100 --human`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return withCode(ExitError, fmt.Errorf("invalid x %q: %w", args[0], err))
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return withCode(ExitError, fmt.Errorf("invalid y %q: %w", args[1], err))
			}
			p := orb.Point{x, y}
			if !spatial.Finite(p) {
				return withCode(ExitError, fmt.Errorf("point (%s, %s) must be finite", args[0], args[1]))
			}

			idx, err := spatial.NewIndex(roadmap.AddisAbaba())
			if err != nil {
				return withCode(ExitError, err)
			}
			m, err := idx.Nearest(p)
			if err != nil {
				return withCode(ExitError, err)
			}

			out := cmd.OutOrStdout()
			if root.human {
				fmt.Fprintf(out, "%s (distance %.2f)\n", m.ID, m.Distance)
				return nil
			}
			return withCode(ExitError, outputJSON(out, m))
		},
	}
}
