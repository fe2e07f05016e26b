package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

// BookList is the list surface: it shows whatever entries the presenter
// rendered last and tracks the highlighted card.
type BookList struct {
	Items         []services.Entry
	SelectedIndex int
	Width         int
	Height        int
}

func NewBookList() *BookList {
	return &BookList{
		Items:         []services.Entry{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

// SetItems replaces every card. It is registered as the presenter's render
// callback.
func (m *BookList) SetItems(items []services.Entry) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *BookList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *BookList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *BookList) Selected() *services.Entry {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

func (m *BookList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No books in library. Press n to add one.")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range m.Items {
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.CardTitleStyle.Render(item.Book.Title)
		text := styles.TextStyle.Render(item.Text)

		mark := "○"
		if item.Book.HasRead {
			mark = "●"
		}
		status := styles.ReadStyle(item.Book.HasRead).Render(
			fmt.Sprintf("%s %s", mark, item.Book.ReadLabel()),
		)

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			text,
			status,
		)

		card := cardStyle.Width(m.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}
