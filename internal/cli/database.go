package cli

import (
	"github.com/spf13/cobra"

	"github.com/shaiso/notion-cli/internal/notion"
)

// NewDatabaseCmd создаёт группу команд для баз данных.
func NewDatabaseCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Retrieve database metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrieveDatabase(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	})

	return cmd
}

// NewDataSourceCmd создаёт группу команд для data sources.
func NewDataSourceCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ds",
		Short: "Data source operations",
	}

	cmd.AddCommand(
		newDataSourceGetCmd(clientFn, outputFn),
		newDataSourceCreateCmd(clientFn, outputFn),
		newDataSourceUpdateCmd(clientFn, outputFn),
		newDataSourceQueryCmd(clientFn, outputFn, pageFn),
		newDataSourceTemplatesCmd(clientFn, outputFn),
	)

	return cmd
}

func newDataSourceGetCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Retrieve a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.RetrieveDataSource(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}

func newDataSourceCreateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var parent, title, properties string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a data source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			props := flags.optional("properties", properties)
			if err := flags.err(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.CreateDataSource(cmd.Context(), notion.ParseID(parent), title, props)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent page ID (required)")
	cmd.Flags().StringVar(&title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&properties, "properties", "", "Properties schema as JSON string")
	cmd.MarkFlagRequired("parent")
	cmd.MarkFlagRequired("title")

	return cmd
}

func newDataSourceUpdateCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var flags jsonFlags
			body := flags.value("data source", data)
			if err := flags.err(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.UpdateDataSource(cmd.Context(), notion.ParseID(args[0]), body)
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Data as JSON string (required)")
	cmd.MarkFlagRequired("data")

	return cmd
}

func newDataSourceQueryCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	var filter, sorts string

	cmd := &cobra.Command{
		Use:   "query ID",
		Short: "Query a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Обе ошибки JSON сообщаются вместе
			var flags jsonFlags
			filterValue := flags.optional("filter", filter)
			sortsValue := flags.optional("sorts", sorts)
			if err := flags.err(); err != nil {
				return err
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.QueryDataSource(cmd.Context(), notion.ParseID(args[0]), filterValue, sortsValue, pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Filter as JSON string")
	cmd.Flags().StringVar(&sorts, "sorts", "", "Sorts as JSON string")

	return cmd
}

func newDataSourceTemplatesCmd(clientFn ClientFunc, outputFn OutputFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "templates ID",
		Short: "List templates in a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.ListDataSourceTemplates(cmd.Context(), notion.ParseID(args[0]))
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}
}
