package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewUserCmd создаёт группу команд для пользователей.
func NewUserCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
	}

	cmd.AddCommand(
		newUserMeCmd(clientFn, outputFn),
		newUserGetCmd(clientFn, outputFn),
		newUserListCmd(clientFn, outputFn, pageFn),
	)

	return cmd
}

func newUserMeCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Get the current bot user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newUserGetCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrieveUser(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newUserListCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.ListUsers(cmd.Context(), pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}
