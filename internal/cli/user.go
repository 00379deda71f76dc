package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User sign-up commands",
	}

	cmd.AddCommand(newUserSignUpCmd())
	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserClearErrorCmd())

	return cmd
}

func newUserSignUpCmd() *cobra.Command {
	var req request.SignUpRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Sign up a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.ConfirmPassword == "" {
				req.ConfirmPassword = req.Password
			}

			var result response.User
			if err := client.Post("/api/v1/users", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Firstname, "firstname", "", "First name")
	cmd.Flags().StringVar(&req.Middlename, "middlename", "", "Middle name (optional)")
	cmd.Flags().StringVar(&req.Lastname, "lastname", "", "Last name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm-password", "", "Password confirmation (defaults to --password)")

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List signed-up users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[response.User]
			if err := client.Get("/api/v1/users", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newUserClearErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-error",
		Short: "Dismiss the last sign-up error",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/users/error"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Sign-up error cleared")
			return nil
		},
	}
}
