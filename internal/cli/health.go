package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HealthResult

			if err := client.Get(cmd.Context(), "/api/v1/health", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the premium-square board layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Board

			if err := client.Get(cmd.Context(), "/api/v1/board", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
