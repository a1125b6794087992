package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewBlockCmd создаёт группу команд для блоков.
func NewBlockCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block operations",
	}

	cmd.AddCommand(
		newBlockGetCmd(clientFn, outputFn),
		newBlockChildrenCmd(clientFn, outputFn, pageFn),
		newBlockAppendCmd(clientFn, outputFn),
		newBlockUpdateCmd(clientFn, outputFn),
		newBlockDeleteCmd(clientFn, outputFn),
	)

	return cmd
}

func newBlockGetCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrieveBlock(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newBlockChildrenCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "children ID",
		Short: "List block children",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.ListBlockChildren(cmd.Context(), notion.ParseID(args[0]), pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newBlockAppendCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var children, after string

	cmd := &cobra.Command{
		Use:   "append ID",
		Short: "Append children to a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			blocks := flags.value("children", children)
			if err := flags.err(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			if after != "" {
				after = notion.ParseID(after)
			}
			result, err := client.AppendBlockChildren(cmd.Context(), notion.ParseID(args[0]), blocks, after)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&children, "children", "", "Children blocks as JSON string (required)")
	cmd.Flags().StringVar(&after, "after", "", "Insert after this block ID")
	cmd.MarkFlagRequired("children")

	return cmd
}

func newBlockUpdateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var (
		data     string
		archived bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			body := flags.object("block data", data)
			if err := flags.err(); err != nil {
				return err
			}

			var archivedPtr *bool
			if cmd.Flags().Changed("archived") {
				archivedPtr = &archived
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.UpdateBlock(cmd.Context(), notion.ParseID(args[0]), body, archivedPtr)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Block data as JSON string (required)")
	cmd.Flags().BoolVar(&archived, "archived", false, "Archive/unarchive the block")
	cmd.MarkFlagRequired("data")

	return cmd
}

func newBlockDeleteCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.DeleteBlock(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}
