package cmd

import (
	"fmt"

	"github.com/kerbaras/bookshelf/pkg/integrations"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library as an EPUB reading list",
	Long:  "Write the starting catalog to an EPUB with one section for every book and one each for read and unread books",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")

		var (
			path string
			err  error
		)
		if dir != "" {
			path, err = integrations.NewEPubExporter(dir).Export(cfg.Export.Title, controller.Catalog().All())
		} else {
			path, err = controller.Export()
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "📖 EPUB created: %s\n", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("dir", "d", "", "Output directory (overrides export.dir)")
}
