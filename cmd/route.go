package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sperrin/voiceroute/internal/adapters/pipeline"
	renderdecision "github.com/sperrin/voiceroute/internal/adapters/render/decision"
	"github.com/sperrin/voiceroute/internal/domain"
	"github.com/spf13/cobra"
)

type routeOutput struct {
	Route       string           `json:"route"`
	Mode        string           `json:"mode"`
	Language    string           `json:"language"`
	SessionID   string           `json:"session_id"`
	Instruction string           `json:"instruction"`
	Pipeline    pipeline.Profile `json:"pipeline"`
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		metadataJSON string
		language     string
		voice        string
		mode         string
		sessionID    string
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute the routing decision for one session's metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var raw domain.RawMetadata
			if metadataJSON != "" {
				if err := json.Unmarshal([]byte(metadataJSON), &raw); err != nil {
					return fmt.Errorf("parse --metadata: %w", err)
				}
			}
			if language != "" {
				raw.Language = language
			}
			if voice != "" {
				raw.Voice = voice
			}
			if mode != "" {
				raw.Mode = mode
			}
			if sessionID != "" {
				raw.SessionID = sessionID
			}

			supervisor, policy, err := a.buildSupervisor(cmd.Context())
			if err != nil {
				return err
			}

			decision, err := supervisor.Route(cmd.Context(), raw)
			if err != nil {
				return err
			}

			profile := a.profileBuilder(policy).Build(decision)

			if asJSON {
				return writeJSON(cmd, routeOutput{
					Route:       decision.Key.String(),
					Mode:        string(decision.Key.Mode),
					Language:    string(decision.Key.Language),
					SessionID:   decision.Metadata.SessionID,
					Instruction: string(decision.Instruction),
					Pipeline:    profile,
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderdecision.RenderDecision(decision, profile))
			return err
		},
	}

	cmd.Flags().StringVar(&metadataJSON, "metadata", "", "raw session metadata as a JSON object")
	cmd.Flags().StringVar(&language, "language", "", "session language code (overrides --metadata)")
	cmd.Flags().StringVar(&voice, "voice", "", "synthesis voice identifier (overrides --metadata)")
	cmd.Flags().StringVar(&mode, "mode", "", "conversation mode (overrides --metadata)")
	cmd.Flags().StringVar(&sessionID, "session", "", "session identifier (overrides --metadata)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the decision as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
