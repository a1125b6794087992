package cli

import (
	"github.com/spf13/cobra"
)

// NewSearchCmd создаёт команду поиска страниц и data sources.
func NewSearchCmd(clientFn ClientFunc, outputFn OutputFunc, pageFn PageFunc) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search pages and databases by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter != "" {
				if err := validateSearchFilter(filter); err != nil {
					return err
				}
			}

			client, err := clientFn(cmd.Context())
			if err != nil {
				return err
			}

			result, err := client.Search(cmd.Context(), args[0], filter, pageFn())
			if err != nil {
				return err
			}
			return outputFn().Print(result)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter by type: page or data_source")

	return cmd
}
