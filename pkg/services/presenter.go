package services

import (
	"errors"

	"github.com/kerbaras/bookshelf/pkg/data"
	"go.uber.org/zap"
)

type ActionKind int

const (
	ToggleRead ActionKind = iota
	Remove
)

func (k ActionKind) String() string {
	switch k {
	case ToggleRead:
		return "toggle-read"
	case Remove:
		return "remove"
	default:
		return "unknown"
	}
}

// Action is a click on a rendered entry, bound to the entry's position at
// render time.
type Action struct {
	Position int
	Kind     ActionKind
}

// Entry is one rendered book card.
type Entry struct {
	Book   data.Book
	Text   string
	Toggle Action
	Remove Action
}

type IntakeState int

const (
	IntakeClosed IntakeState = iota
	IntakeOpen
)

func (s IntakeState) String() string {
	if s == IntakeOpen {
		return "open"
	}
	return "closed"
}

// RenderFunc receives the full entry list after every render.
type RenderFunc func([]Entry)

// Summary counts books and pages for the reading progress bar.
type Summary struct {
	Books     int
	BooksRead int
	Pages     int
	PagesRead int
}

// Presenter turns the catalog into entries and applies user actions to it.
// Every mutation is followed by a full re-render so bindings never go stale.
type Presenter struct {
	catalog  *data.Catalog
	entries  []Entry
	intake   IntakeState
	onRender []RenderFunc
	logger   *zap.Logger
}

func NewPresenter(catalog *data.Catalog, logger *zap.Logger) *Presenter {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Presenter{
		catalog: catalog,
		intake:  IntakeClosed,
		logger:  logger,
	}
	p.Render()
	return p
}

// OnRender subscribes fn to future renders and calls it once with the
// current entries.
func (p *Presenter) OnRender(fn RenderFunc) {
	p.onRender = append(p.onRender, fn)
	fn(p.Entries())
}

// Render rebuilds every entry from the current catalog.
func (p *Presenter) Render() []Entry {
	books := p.catalog.All()
	entries := make([]Entry, len(books))
	for i, book := range books {
		entries[i] = Entry{
			Book:   book,
			Text:   book.Info(),
			Toggle: Action{Position: i, Kind: ToggleRead},
			Remove: Action{Position: i, Kind: Remove},
		}
	}
	p.entries = entries

	for _, fn := range p.onRender {
		fn(p.Entries())
	}
	return p.Entries()
}

func (p *Presenter) Entries() []Entry {
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Dispatch applies an action to the catalog and re-renders when it changed
// something.
func (p *Presenter) Dispatch(a Action) {
	var applied bool
	switch a.Kind {
	case ToggleRead:
		applied = p.catalog.ToggleReadAt(a.Position)
	case Remove:
		applied = p.catalog.RemoveAt(a.Position)
	default:
		p.logger.Warn("unknown action", zap.Int("kind", int(a.Kind)))
		return
	}
	p.logger.Info("action dispatched",
		zap.Stringer("kind", a.Kind),
		zap.Int("position", a.Position),
		zap.Bool("applied", applied),
	)
	if applied {
		p.Render()
	}
}

func (p *Presenter) Intake() IntakeState {
	return p.intake
}

func (p *Presenter) OpenIntake() {
	p.intake = IntakeOpen
}

func (p *Presenter) CancelIntake() {
	p.intake = IntakeClosed
}

// Submit validates the form values. On success the book is added, entries are
// re-rendered and the intake is closed; the caller clears its fields. On
// failure it returns a *FieldError and changes nothing.
func (p *Presenter) Submit(s Submission) error {
	book, err := s.Validate()
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			p.logger.Debug("submission rejected", zap.String("field", string(fe.Field)), zap.Error(fe.Err))
		}
		return err
	}

	p.catalog.Add(book)
	p.logger.Info("book added", zap.String("id", book.ID), zap.String("title", book.Title))
	p.Render()
	p.intake = IntakeClosed
	return nil
}

func (p *Presenter) Summary() Summary {
	var s Summary
	for _, e := range p.entries {
		s.Books++
		s.Pages += e.Book.NumPages
		if e.Book.HasRead {
			s.BooksRead++
			s.PagesRead += e.Book.NumPages
		}
	}
	return s
}
