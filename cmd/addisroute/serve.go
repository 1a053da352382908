package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addisroute/internal/server"
	"github.com/katalvlaran/addisroute/roadmap"
	"github.com/katalvlaran/addisroute/search"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the search HTTP service",
		Long: `Run the search HTTP service.

Routes: POST /search, GET /graph, GET /nearest, GET /ws/search, GET /healthz.
Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			engine, err := search.NewEngine(roadmap.AddisAbaba())
			if err != nil {
				return withCode(ExitError, err)
			}
			logger := log.New(cmd.ErrOrStderr(), "addisroute: ", log.LstdFlags)
			srv, err := server.New(engine, cfg, server.WithLogger(logger))
			if err != nil {
				return withCode(ExitConfigError, err)
			}

			return withCode(ExitError, srv.ListenAndServe(cmd.Context()))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :5000)")

	return cmd
}
