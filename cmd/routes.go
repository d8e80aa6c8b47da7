package cmd

import (
	"fmt"

	renderdecision "github.com/sperrin/voiceroute/internal/adapters/render/decision"
	"github.com/spf13/cobra"
)

type routesOutput struct {
	Routes []routeSummaryOutput `json:"routes"`
}

type routeSummaryOutput struct {
	Route    string `json:"route"`
	Mode     string `json:"mode"`
	Language string `json:"language"`
	Persona  string `json:"persona"`
	Locale   string `json:"locale"`
}

func newRoutesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every resolvable (mode, language) route",
		RunE: func(cmd *cobra.Command, _ []string) error {
			supervisor, _, err := a.buildSupervisor(cmd.Context())
			if err != nil {
				return err
			}

			summaries := supervisor.Summaries()

			if asJSON {
				out := routesOutput{Routes: make([]routeSummaryOutput, 0, len(summaries))}
				for _, summary := range summaries {
					out.Routes = append(out.Routes, routeSummaryOutput{
						Route:    summary.Route.String(),
						Mode:     string(summary.Route.Mode),
						Language: string(summary.Route.Language),
						Persona:  summary.Persona,
						Locale:   summary.LocaleName,
					})
				}
				return writeJSON(cmd, out)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderdecision.RenderRoutes(summaries))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the route table as JSON")

	return cmd
}
