package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
)

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Password helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "strength <password>",
		Short: "Score a candidate password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PasswordStrength
			if err := client.Post("/api/v1/password/strength", request.PasswordStrengthRequest{Password: args[0]}, &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
