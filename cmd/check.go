package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the routing policy resolves every route",
		Long:  "check loads the routing policy and rebuilds the supervisor, failing when any supported mode or language lacks its specialist template or locale. Run it after editing the policy file; a misconfigured registry must be caught before sessions are accepted, not at first use.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			supervisor, _, err := a.buildSupervisor(cmd.Context())
			if err != nil {
				return err
			}

			routes := supervisor.Routes()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "policy ok: %d routes resolvable\n", len(routes))
			return err
		},
	}
}
