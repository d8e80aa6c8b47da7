package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "voiceroute",
		Short:         "voiceroute: route conversational sessions to specialist policies",
		Long:          "voiceroute resolves a session's (mode, language) route from its metadata, materializes the specialist instruction for the speech pipeline, and exposes the routing table over CLI and HTTP.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRouteCmd(app),
		newRoutesCmd(app),
		newCheckCmd(app),
		newPolicyCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
