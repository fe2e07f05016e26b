package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the books in your library",
	Long:  "Display the starting catalog (samples plus configured seed books) in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		books := controller.Catalog().All()
		out := cmd.OutOrStdout()

		if len(books) == 0 {
			fmt.Fprintln(out, "📚 No books in library. Add seed books to your config or use the TUI.")
			return
		}

		fmt.Fprintf(out, "\n📚 Library (%d books)\n\n", len(books))
		fmt.Fprintln(out, bookTable(books))
	},
}

func bookTable(books []data.Book) string {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Title", Width: 32},
		{Title: "Author", Width: 24},
		{Title: "Pages", Width: 7},
		{Title: "Status", Width: 14},
	}

	rows := []table.Row{}
	for i, book := range books {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			truncateString(book.Title, 30),
			truncateString(book.Author, 22),
			fmt.Sprintf("%d", book.NumPages),
			book.ReadLabel(),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // header and its border count toward the height
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t.View()
}

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
