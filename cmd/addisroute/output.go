package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/addisroute/search"
)

// ErrorResponse is a JSON error written to stderr.
type ErrorResponse struct {
	Error string `json:"error"`
}

// outputJSON writes v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes err to w in the selected format.
func outputError(w io.Writer, human bool, err error) {
	if human {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	_ = outputJSON(w, ErrorResponse{Error: err.Error()})
}

// printResultHuman prints a search result as text. A negative cheapest is
// left out.
func printResultHuman(w io.Writer, res *search.Result, cheapest int64) {
	fmt.Fprintf(w, "Algorithm: %s\n", res.Algorithm)
	fmt.Fprintln(w, res.Status.Message())
	if res.Found {
		fmt.Fprintf(w, "Path:      %s\n", strings.Join(res.Path, " -> "))
		fmt.Fprintf(w, "Steps:     %d\n", res.PathLength)
		fmt.Fprintf(w, "Cost:      %d\n", res.PathCost)
		if cheapest >= 0 {
			fmt.Fprintf(w, "Cheapest:  %d\n", cheapest)
		}
	}
	if len(res.Explored) > 0 {
		fmt.Fprintf(w, "Explored:  %d (%s)\n", len(res.Explored), strings.Join(res.Explored, ", "))
	}
}
