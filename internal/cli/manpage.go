package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewManpageCmd создаёт команду генерации man-страницы в stdout.
func NewManpageCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "manpage",
		Short: "Generate man page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "NOTION",
				Section: "1",
				Source:  "notion " + version,
				Manual:  "Notion CLI Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
