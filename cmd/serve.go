package cmd

import (
	"os/signal"
	"syscall"

	"github.com/sperrin/voiceroute/internal/adapters/transport/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing API over HTTP",
		Long:  "serve builds the supervisor from the routing policy and exposes POST /v1/route and GET /v1/routes. A misconfigured policy aborts startup; no sessions are accepted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			supervisor, policy, err := a.buildSupervisor(cmd.Context())
			if err != nil {
				return err
			}

			server := httpapi.NewServer(supervisor, a.profileBuilder(policy), a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", a.listenAddr, "listen address for the routing API")

	return cmd
}
