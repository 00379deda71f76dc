package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newPurgeCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every stored record and reset the counter",
		Long: `Purge empties every collection on the server and deletes the persisted
snapshots. It cannot be undone, so --yes is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to purge without --yes")
			}
			if err := client.Delete("/api/v1/store"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Store purged")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the purge")

	return cmd
}
