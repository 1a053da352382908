package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addisroute/constraint"
	"github.com/katalvlaran/addisroute/internal/config"
	"github.com/katalvlaran/addisroute/remote"
	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/search"
)

// searchOptions are the flags of the search command.
type searchOptions struct {
	from          string
	to            string
	algorithm     string
	blocked       []string
	mode          string
	endpoint      string
	maxExpansions int
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	o := &searchOptions{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a route between two landmarks",
		Long: `Find a route between two landmarks.

Names match case-insensitively. Blocked locations are never entered.

Examples:
  addisroute search --from "4 Kilo" --to Merkato
  addisroute search --from Merkato --to Kality --algo greedy --human
  addisroute search --from "6 Kilo" --to Kality --block "Meskel Square"
  addisroute search --from Bole --to CMC --mode remote --endpoint http://localhost:5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, root, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.from, "from", "", "Start location")
	f.StringVar(&o.to, "to", "", "Goal location")
	f.StringVar(&o.algorithm, "algo", "", "Algorithm: BFS, DFS or Greedy (default from config)")
	f.StringArrayVar(&o.blocked, "block", nil, "Location to avoid (repeatable)")
	f.StringVar(&o.mode, "mode", "", "Execution mode: local or remote (default from config)")
	f.StringVar(&o.endpoint, "endpoint", "", "Search service URL for remote mode")
	f.IntVar(&o.maxExpansions, "max-expansions", -1, "Abort after this many frontier pops (0 = unlimited, default from config)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runSearch(cmd *cobra.Command, root *rootOptions, o *searchOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if o.mode != "" {
		cfg.Client.Mode = strings.ToLower(o.mode)
	}
	if o.endpoint != "" {
		cfg.Client.Endpoint = o.endpoint
	}
	// An unknown --algo is left to the searcher, which reports unknown
	// locations first.
	flagAlg, flagErr := search.ParseAlgorithm(o.algorithm)
	if o.algorithm != "" && flagErr == nil {
		cfg.Search.Algorithm = o.algorithm
	}
	if o.maxExpansions >= 0 {
		cfg.Search.MaxExpansions = o.maxExpansions
	}
	if err = cfg.Validate(); err != nil {
		if _, perr := search.ParseAlgorithm(cfg.Search.Algorithm); perr != nil {
			return withCode(ExitUnknownInput, perr)
		}
		return withCode(ExitConfigError, err)
	}

	searcher, err := newSearcher(cfg)
	if err != nil {
		return withCode(ExitConfigError, err)
	}

	req := search.Request{
		Start:     o.from,
		Goal:      o.to,
		Algorithm: cfg.Algorithm(),
		Blocked:   constraint.New(o.blocked...),
	}
	if o.algorithm != "" {
		req.Algorithm = flagAlg
	}
	var opts []search.Option
	if cfg.Client.Mode == config.ModeLocal {
		opts = append(opts, search.WithMaxExpansions(cfg.Search.MaxExpansions))
	}

	res, err := searcher.Search(cmd.Context(), req, opts...)
	if err != nil {
		if errors.Is(err, search.ErrUnknownLocation) || errors.Is(err, search.ErrUnknownAlgorithm) {
			return withCode(ExitUnknownInput, err)
		}
		return withCode(ExitError, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case root.human:
		printResultHuman(out, res, cheapest(cmd, searcher, req, res))
	case res.Status == search.StatusUnreachable:
		err = outputJSON(out, res.Unreachable())
	default:
		err = outputJSON(out, res.Response())
	}
	if err != nil {
		return withCode(ExitError, fmt.Errorf("writing output: %w", err))
	}
	if !res.Found {
		return withCode(ExitNoPath, errNoPath)
	}

	return nil
}

// newSearcher returns the local engine or a remote client per cfg.Client.Mode.
func newSearcher(cfg *config.Config) (search.Searcher, error) {
	if cfg.Client.Mode == config.ModeRemote {
		return remote.NewClient(cfg.Client.Endpoint,
			remote.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}),
			remote.WithRateLimit(cfg.Client.RateLimit, 1),
		)
	}

	return search.NewEngine(roadmap.AddisAbaba())
}

// cheapest returns the cheapest possible cost for a found route when the
// search ran locally, or -1 when it is unknown.
func cheapest(cmd *cobra.Command, s search.Searcher, req search.Request, res *search.Result) int64 {
	engine, ok := s.(*search.Engine)
	if !ok || !res.Found {
		return -1
	}
	c, ok, err := engine.CheapestCost(cmd.Context(), req.Start, req.Goal, req.Blocked)
	if err != nil || !ok {
		return -1
	}

	return c
}
