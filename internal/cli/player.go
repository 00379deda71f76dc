package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/validation"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registration commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newStatusCmd("registrations", "Review a player registration"))

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var req request.RegisterPlayerRequest
	var age, experience string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Submit a player registration",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Age = validation.RawValue(age)
			req.Experience = validation.RawValue(experience)

			var result response.Player
			if err := client.Post("/api/v1/registrations", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&age, "age", "", "Age in years")
	cmd.Flags().StringVar(&req.Position, "position", "", "One of: "+choices(model.Positions, ", "))
	cmd.Flags().StringVar(&experience, "experience", "", "Years of experience")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List player registrations in submission order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[response.Player]
			if err := client.Get("/api/v1/registrations", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

// newStatusCmd builds the status review command for a reviewable collection
func newStatusCmd(collection, short string) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <" + choices(model.RecordStatuses, "|") + ">",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SetStatusRequest{Status: args[1]}
			if err := client.Patch(fmt.Sprintf("/api/v1/%s/%s/status", collection, args[0]), req, nil); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Status of %s set to %s", args[0], args[1]))
			return nil
		},
	}
}
