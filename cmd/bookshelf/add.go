package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Check a book entry against the intake rules",
	Long: "Validate a book the same way the TUI form does and print the catalog it would produce.\n" +
		"The catalog lives in memory only, so nothing is saved.",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		pages, _ := cmd.Flags().GetString("pages")
		read, _ := cmd.Flags().GetBool("read")
		out := cmd.OutOrStdout()

		err := controller.Presenter().Submit(services.Submission{
			Title:    title,
			Author:   author,
			NumPages: pages,
			HasRead:  read,
		})
		if err != nil {
			var fe *services.FieldError
			if errors.As(err, &fe) {
				fmt.Fprintf(out, "❌ %s: %s\n", fe.Field, fe.Message())
			}
			return err
		}

		entries := controller.Presenter().Entries()
		fmt.Fprintf(out, "✅ Added: %s\n\n", entries[len(entries)-1].Text)
		fmt.Fprintln(out, entryTable(entries))
		return nil
	},
}

func entryTable(entries []services.Entry) *table.Table {
	var (
		purple = lipgloss.Color("99")

		headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Book")

	for i, e := range entries {
		t.Row(fmt.Sprintf("%d", i+1), truncateString(e.Text, 78))
	}

	return t
}

func init() {
	addCmd.Flags().StringP("title", "t", "", "Book title")
	addCmd.Flags().StringP("author", "a", "", "Book author")
	addCmd.Flags().StringP("pages", "p", "", "Number of pages")
	addCmd.Flags().BoolP("read", "r", false, "Mark the book as read")
}
