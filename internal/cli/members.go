package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/response"
)

func newMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List all players and coaches",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Members
			if err := client.Get("/api/v1/members", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
