package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/bookshelf/pkg/data"
)

var (
	ErrMissingTitle     = errors.New("missing title")
	ErrMissingAuthor    = errors.New("missing author")
	ErrInvalidPageCount = errors.New("invalid page count")
)

// Field names an intake form field.
type Field string

const (
	FieldTitle  Field = "title"
	FieldAuthor Field = "author"
	FieldPages  Field = "pages"
)

// MaxPages bounds the page count so library totals stay well inside int.
const MaxPages = 100000

// FieldError rejects a submission because of a single field.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return string(e.Field) + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Message is the text shown next to the offending field.
func (e *FieldError) Message() string {
	switch {
	case errors.Is(e.Err, ErrMissingTitle):
		return "Please enter a title."
	case errors.Is(e.Err, ErrMissingAuthor):
		return "Please enter an author."
	case errors.Is(e.Err, ErrInvalidPageCount):
		return fmt.Sprintf("Please enter a page count between 1 and %d.", MaxPages)
	default:
		return e.Err.Error()
	}
}

// Submission holds the raw intake form values.
type Submission struct {
	Title    string
	Author   string
	NumPages string
	HasRead  bool
}

// Validate checks the fields in form order and builds the book. The first
// failing field wins.
func (s Submission) Validate() (data.Book, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return data.Book{}, &FieldError{Field: FieldTitle, Err: ErrMissingTitle}
	}

	author := strings.TrimSpace(s.Author)
	if author == "" {
		return data.Book{}, &FieldError{Field: FieldAuthor, Err: ErrMissingAuthor}
	}

	pages, err := strconv.Atoi(strings.TrimSpace(s.NumPages))
	if err != nil || pages <= 0 || pages > MaxPages {
		return data.Book{}, &FieldError{Field: FieldPages, Err: ErrInvalidPageCount}
	}

	return data.NewBook(title, author, pages, s.HasRead), nil
}
