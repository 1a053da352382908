package main

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/addisroute/roadmap"
)

// GraphLocation is one location in the graph command output.
type GraphLocation struct {
	ID        string             `json:"id"`
	Coord     orb.Point          `json:"coord"`
	Neighbors []roadmap.Neighbor `json:"neighbors"`
}

// GraphOutput is the JSON output of the graph command.
type GraphOutput struct {
	Locations []GraphLocation `json:"locations"`
	Edges     int             `json:"edges"`
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the landmark graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := roadmap.AddisAbaba()
			out := cmd.OutOrStdout()
			if root.human {
				for _, id := range g.Locations() {
					nbs, _ := g.Neighbors(id)
					parts := make([]string, len(nbs))
					for i, nb := range nbs {
						parts[i] = fmt.Sprintf("%s (%d)", nb.ID, nb.Weight)
					}
					fmt.Fprintf(out, "%-14s %s\n", id+":", strings.Join(parts, ", "))
				}
				fmt.Fprintf(out, "\n%d locations, %d edges\n", g.LocationCount(), g.EdgeCount())
				return nil
			}

			resp := GraphOutput{Edges: g.EdgeCount()}
			for _, id := range g.Locations() {
				p, _ := g.Coordinate(id)
				nbs, _ := g.Neighbors(id)
				resp.Locations = append(resp.Locations, GraphLocation{ID: id, Coord: p, Neighbors: nbs})
			}
			return withCode(ExitError, outputJSON(out, resp))
		},
	}
}
