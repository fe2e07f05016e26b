package screens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

const (
	focusTitle = iota
	focusAuthor
	focusPages
	focusRead
	focusCount
)

// IntakeScreen is the "new book" form shown while the presenter's intake is
// open.
type IntakeScreen struct {
	presenter *services.Presenter
	inputs    []textinput.Model
	hasRead   bool
	focus     int
	fieldErr  *services.FieldError
	err       error
	width     int
	height    int
}

func NewIntakeScreen(presenter *services.Presenter) *IntakeScreen {
	title := textinput.New()
	title.Placeholder = "The Hobbit"
	title.CharLimit = 200
	title.Width = 50

	author := textinput.New()
	author.Placeholder = "J.R.R. Tolkien"
	author.CharLimit = 200
	author.Width = 50

	pages := textinput.New()
	pages.Placeholder = "295"
	pages.Width = 12

	return &IntakeScreen{
		presenter: presenter,
		inputs:    []textinput.Model{title, author, pages},
	}
}

func (s *IntakeScreen) Init() tea.Cmd {
	return nil
}

// Open focuses the first field. Values left over from a cancelled attempt are
// kept.
func (s *IntakeScreen) Open() tea.Cmd {
	s.fieldErr = nil
	s.err = nil
	return s.setFocus(focusTitle)
}

func (s *IntakeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.presenter.CancelIntake()
			s.blurAll()
			return s, nil
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
		case "enter":
			return s.submit()
		case " ":
			if s.focus == focusRead {
				s.hasRead = !s.hasRead
				return s, nil
			}
		}
	}

	if s.focus < focusRead {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *IntakeScreen) submit() (tea.Model, tea.Cmd) {
	sub := services.Submission{
		Title:    s.inputs[focusTitle].Value(),
		Author:   s.inputs[focusAuthor].Value(),
		NumPages: s.inputs[focusPages].Value(),
		HasRead:  s.hasRead,
	}

	err := s.presenter.Submit(sub)
	if err != nil {
		var fe *services.FieldError
		if errors.As(err, &fe) {
			s.fieldErr = fe
			return s, s.setFocus(fieldFocus(fe.Field))
		}
		s.err = err
		return s, nil
	}

	title := strings.TrimSpace(sub.Title)
	s.reset()
	return s, func() tea.Msg {
		return bookAddedMsg{title: title}
	}
}

func (s *IntakeScreen) reset() {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.hasRead = false
	s.fieldErr = nil
	s.err = nil
	s.blurAll()
	s.focus = focusTitle
}

func (s *IntakeScreen) setFocus(focus int) tea.Cmd {
	s.blurAll()
	s.focus = focus
	if focus < focusRead {
		return s.inputs[focus].Focus()
	}
	return nil
}

func (s *IntakeScreen) blurAll() {
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
}

func fieldFocus(f services.Field) int {
	switch f {
	case services.FieldAuthor:
		return focusAuthor
	case services.FieldPages:
		return focusPages
	default:
		return focusTitle
	}
}

func (s *IntakeScreen) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("📕 New Book"))
	b.WriteString("\n")

	labels := []string{"Title", "Author", "Pages"}
	fields := []services.Field{services.FieldTitle, services.FieldAuthor, services.FieldPages}
	for i, input := range s.inputs {
		inputStyle := styles.InputStyle
		if s.focus == i {
			inputStyle = styles.FocusedInputStyle
		}
		b.WriteString(styles.SubtitleStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(inputStyle.Render(input.View()))
		if s.fieldErr != nil && s.fieldErr.Field == fields[i] {
			b.WriteString("\n")
			b.WriteString(styles.StatusError.Render(s.fieldErr.Message()))
		}
		b.WriteString("\n")
	}

	box := "[ ]"
	if s.hasRead {
		box = "[x]"
	}
	checkbox := fmt.Sprintf("%s I have read this book", box)
	if s.focus == focusRead {
		checkbox = styles.CardTitleStyle.Render(checkbox)
	} else {
		checkbox = styles.TextStyle.Render(checkbox)
	}
	b.WriteString("\n")
	b.WriteString(checkbox)

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
	}

	help := styles.HelpStyle.Render("tab/shift+tab: move • space: toggle read • enter: add book • esc: cancel")

	dialog := styles.DialogStyle.Render(b.String())
	return fmt.Sprintf("%s\n%s", dialog, help)
}
