package cmd

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	policytoml "github.com/sperrin/voiceroute/internal/adapters/policy/toml"
	"github.com/spf13/cobra"
)

func newPolicyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Manage the routing policy file",
	}

	cmd.AddCommand(newPolicyInitCmd(a), newPolicyShowCmd(a))

	return cmd
}

func newPolicyInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the built-in default policy for editing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				if _, err := os.Stat(a.source.Path()); err == nil {
					return fmt.Errorf("policy file %s already exists (use --force to overwrite)", a.source.Path())
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("stat policy file: %w", err)
				}
			}

			if err := a.source.Save(cmd.Context(), policytoml.DefaultPolicy()); err != nil {
				return fmt.Errorf("write default policy: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", a.source.Path())
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing policy file")

	return cmd
}

func newPolicyShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective routing policy as TOML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			policy, err := a.source.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load routing policy: %w", err)
			}

			data, err := toml.Marshal(policytoml.Schema(policy))
			if err != nil {
				return fmt.Errorf("encode routing policy: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
