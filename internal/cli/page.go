package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewPageCmd создаёт группу команд для страниц.
func NewPageCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Page operations",
	}

	cmd.AddCommand(
		newPageGetCmd(clientFn, outputFn),
		newPageCreateCmd(clientFn, outputFn),
		newPageUpdateCmd(clientFn, outputFn),
		newPageMoveCmd(clientFn, outputFn),
		newPagePropertyCmd(clientFn, outputFn, pageFn),
	)

	return cmd
}

func newPageGetCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var filterProperties []string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrievePage(cmd.Context(), notion.ParseID(args[0]), filterProperties)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringSliceVar(&filterProperties, "filter-properties", nil,
		"Filter to specific property IDs (comma-separated or repeated)")

	return cmd
}

func newPageCreateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var (
		parent         string
		properties     string
		children       string
		databaseParent bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			params := notion.CreatePageParams{
				ParentID:       notion.ParseID(parent),
				DatabaseParent: databaseParent,
				Properties:     flags.value("properties", properties),
				Children:       flags.optional("children", children),
			}
			if err := flags.err(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.CreatePage(cmd.Context(), params)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent page or database ID (required)")
	cmd.Flags().StringVar(&properties, "properties", "", "Properties as JSON string (required)")
	cmd.Flags().StringVar(&children, "children", "", "Children blocks as JSON string")
	cmd.Flags().BoolVar(&databaseParent, "database-parent", false, "Parent is a database (default: page)")
	cmd.MarkFlagRequired("parent")
	cmd.MarkFlagRequired("properties")

	return cmd
}

func newPageUpdateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var (
		properties string
		archived   bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update page properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			props := flags.value("properties", properties)
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

			result, err := client.UpdatePage(cmd.Context(), notion.ParseID(args[0]), props, archivedPtr)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&properties, "properties", "", "Properties as JSON string (required)")
	cmd.Flags().BoolVar(&archived, "archived", false, "Archive/unarchive the page (--archived=false to restore)")
	cmd.MarkFlagRequired("properties")

	return cmd
}

func newPageMoveCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var params moveParams

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move a page to a different parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.Validate(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.MovePage(cmd.Context(), notion.ParseID(args[0]), params.ParentType, notion.ParseID(params.To))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&params.ParentType, "parent-type", notion.ParentPage, "Parent type: page, database, or workspace")
	cmd.Flags().StringVar(&params.To, "to", "", "Destination parent ID (not needed for workspace)")

	return cmd
}

func newPagePropertyCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "property PAGE_ID PROPERTY_ID",
		Short: "Get a page property value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrievePageProperty(cmd.Context(), notion.ParseID(args[0]), args[1], pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}
