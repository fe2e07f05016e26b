package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/bookshelf/pkg/services"
)

// RootScreen shows the library and overlays the intake form while the
// presenter's intake is open.
type RootScreen struct {
	controller *services.LibraryController
	presenter  *services.Presenter

	library *LibraryScreen
	intake  *IntakeScreen

	width  int
	height int
}

func NewRootScreen(controller *services.LibraryController) *RootScreen {
	presenter := controller.Presenter()
	return &RootScreen{
		controller: controller,
		presenter:  presenter,
		library:    NewLibraryScreen(controller),
		intake:     NewIntakeScreen(presenter),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return tea.Batch(r.library.Init(), r.intake.Init())
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.presenter.Intake() == services.IntakeOpen {
			newModel, cmd := r.intake.Update(msg)
			r.intake = newModel.(*IntakeScreen)
			return r, cmd
		}

		switch msg.String() {
		case "q":
			return r, tea.Quit
		case "n":
			r.presenter.OpenIntake()
			return r, r.intake.Open()
		}

		newModel, cmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, cmd

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
	}

	// Everything else (resizes, cursor blinks, command results) goes to both
	// screens.
	libModel, libCmd := r.library.Update(msg)
	r.library = libModel.(*LibraryScreen)
	intakeModel, intakeCmd := r.intake.Update(msg)
	r.intake = intakeModel.(*IntakeScreen)

	return r, tea.Batch(libCmd, intakeCmd)
}

func (r *RootScreen) View() string {
	if r.presenter.Intake() == services.IntakeOpen {
		return r.intake.View()
	}
	return r.library.View()
}
