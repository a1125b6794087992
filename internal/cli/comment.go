package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewCommentCmd создаёт группу команд для комментариев.
func NewCommentCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Comment operations",
	}

	cmd.AddCommand(
		newCommentListCmd(clientFn, outputFn, pageFn),
		newCommentCreateCmd(clientFn, outputFn),
	)

	return cmd
}

func newCommentListCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	var blockID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List comments on a block or page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.ListComments(cmd.Context(), notion.ParseID(blockID), pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&blockID, "block-id", "", "Block or page ID (required)")
	cmd.MarkFlagRequired("block-id")

	return cmd
}

func newCommentCreateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var pageID, text string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a comment on a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.CreateComment(cmd.Context(), notion.ParseID(pageID), text)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&pageID, "page-id", "", "Page ID (required)")
	cmd.Flags().StringVar(&text, "text", "", "Comment text (required)")
	cmd.MarkFlagRequired("page-id")
	cmd.MarkFlagRequired("text")

	return cmd
}
