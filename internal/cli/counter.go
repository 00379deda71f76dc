package cli

import (
	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/response"
)

func newCounterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Counter commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the counter",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Counter
			if err := client.Get("/api/v1/counter", &result); err != nil {
				return err
			}
			output(cmd).Print(result)
			return nil
		},
	})

	for _, action := range []struct{ name, short string }{
		{"increment", "Add one to the counter"},
		{"decrement", "Subtract one from the counter"},
		{"reset", "Set the counter back to zero"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   action.name,
			Short: action.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				var result response.Counter
				if err := client.Post("/api/v1/counter/"+action.name, nil, &result); err != nil {
					return err
				}
				output(cmd).Print(result)
				return nil
			},
		})
	}

	return cmd
}
