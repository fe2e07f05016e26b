package data

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	LabelRead   = "has read"
	LabelUnread = "not read yet"
)

type Book struct {
	ID       string
	Title    string
	Author   string
	NumPages int
	HasRead  bool
}

// NewBook assigns a fresh ID. Callers validate the fields first.
func NewBook(title, author string, numPages int, hasRead bool) Book {
	return Book{
		ID:       uuid.NewString(),
		Title:    title,
		Author:   author,
		NumPages: numPages,
		HasRead:  hasRead,
	}
}

func (b Book) ReadLabel() string {
	if b.HasRead {
		return LabelRead
	}
	return LabelUnread
}

// Info is the one-line description shown on a book card.
func (b Book) Info() string {
	return fmt.Sprintf("%s by %s, %d pages, %s", b.Title, b.Author, b.NumPages, b.ReadLabel())
}

// SampleBooks returns the books a fresh catalog starts with.
func SampleBooks() []Book {
	return []Book{
		NewBook("The Hobbit", "J.R.R. Tolkien", 295, false),
		NewBook("A Dog's Life", "Ann M. Martin", 192, true),
		NewBook("It", "Steven King", 1138, false),
	}
}
