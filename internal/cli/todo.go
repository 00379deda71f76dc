package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kdfca/academy/internal/api/request"
	"github.com/kdfca/academy/internal/api/response"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo list commands",
	}

	cmd.AddCommand(newTodoAddCmd())
	cmd.AddCommand(newTodoListCmd())
	cmd.AddCommand(newTodoToggleCmd())
	cmd.AddCommand(newTodoRemoveCmd())
	cmd.AddCommand(newTodoClearCmd())

	return cmd
}

func newTodoAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.AddTodoRequest{Text: strings.Join(args, " ")}

			var result response.Todo
			if err := client.Post("/api/v1/todos", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Collection[response.Todo]
			if err := client.Get("/api/v1/todos", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newTodoToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between open and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(fmt.Sprintf("/api/v1/todos/%s/toggle", args[0]), nil, nil); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Toggled todo %s", args[0]))
			return nil
		},
	}
}

func newTodoRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/todos/%s", args[0])); err != nil {
				return err
			}

			output(cmd).PrintMessage(fmt.Sprintf("Removed todo %s", args[0]))
			return nil
		},
	}
}

func newTodoClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/todos"); err != nil {
				return err
			}

			output(cmd).PrintMessage("Todo list cleared")
			return nil
		},
	}
}
