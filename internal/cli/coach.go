package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
	"github.com/kdfca/academy/internal/model"
	"github.com/kdfca/academy/internal/validation"
)

func newCoachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Coach application commands",
	}

	cmd.AddCommand(newCoachApplyCmd())
	cmd.AddCommand(newCoachListCmd())
	cmd.AddCommand(newStatusCmd("coaches", "Review a coach application"))

	return cmd
}

func newCoachApplyCmd() *cobra.Command {
	var req request.ApplyCoachRequest
	var experience string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a coach application",
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Experience = validation.RawValue(experience)

			var result response.Coach
			if err := client.Post("/api/v1/coaches", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Full name")
	cmd.Flags().StringVar(&req.Specialization, "specialization", "", "One of: "+choices(model.Specializations, ", "))
	cmd.Flags().StringVar(&experience, "experience", "", "Years of experience")
	cmd.Flags().StringVar(&req.Certifications, "certification", "", "One of: "+choices(model.Certifications, ", "))
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&req.Qualifications, "qualifications", "", "Other qualifications (optional)")

	return cmd
}

func newCoachListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List coach applications in submission order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[response.Coach]
			if err := client.Get("/api/v1/coaches", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
