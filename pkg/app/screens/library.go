package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/components"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/services"
)

type LibraryScreen struct {
	controller *services.LibraryController
	presenter  *services.Presenter
	bookList   *components.BookList
	progress   *components.ReadingProgress
	width      int
	height     int
	status     string
	err        error
}

func NewLibraryScreen(controller *services.LibraryController) *LibraryScreen {
	s := &LibraryScreen{
		controller: controller,
		presenter:  controller.Presenter(),
		bookList:   components.NewBookList(),
		progress:   components.NewReadingProgress(80),
	}
	s.presenter.OnRender(s.render)
	return s
}

// render is the presenter callback; it replaces every card.
func (s *LibraryScreen) render(entries []services.Entry) {
	s.bookList.SetItems(entries)
	s.progress.Update(s.presenter.Summary())
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.bookList.Width = msg.Width - 4
		s.bookList.Height = msg.Height - 10
		s.progress.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.bookList.Prev()
		case "down", "j":
			s.bookList.Next()
		case "t", " ":
			if selected := s.bookList.Selected(); selected != nil {
				s.err = nil
				s.status = ""
				s.presenter.Dispatch(selected.Toggle)
			}
		case "d":
			if selected := s.bookList.Selected(); selected != nil {
				s.err = nil
				s.status = fmt.Sprintf("Removed %q", selected.Book.Title)
				s.presenter.Dispatch(selected.Remove)
			}
		case "e":
			s.status = "Exporting..."
			return s, s.export(s.controller.Catalog().All())
		}

	case bookAddedMsg:
		s.err = nil
		s.status = fmt.Sprintf("Added %q", msg.title)
		s.bookList.SelectedIndex = len(s.bookList.Items) - 1

	case exportedMsg:
		if msg.err != nil {
			s.status = ""
			s.err = msg.err
		} else {
			s.err = nil
			s.status = fmt.Sprintf("Exported to %s", msg.path)
		}
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("📚 Library")

	var notice string
	if s.err != nil {
		notice = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.status != "" {
		notice = styles.StatusInfo.Render(s.status) + "\n\n"
	}

	listView := s.bookList.View()
	progressView := s.progress.View()

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • n: new book • t/space: toggle read • d: remove • e: export EPUB • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s\n%s", header, notice, progressView, listView, help)
}

// Messages
type bookAddedMsg struct {
	title string
}

type exportedMsg struct {
	path string
	err  error
}

// Commands

// export runs off the update loop, so it only ever sees the snapshot.
func (s *LibraryScreen) export(books []data.Book) tea.Cmd {
	return func() tea.Msg {
		path, err := s.controller.ExportBooks(books)
		return exportedMsg{path: path, err: err}
	}
}
