package data

import "go.uber.org/zap"

// Catalog is the ordered, in-memory book list. Books are addressed by their
// current position; a removal shifts every later book down by one.
//
// A Catalog is owned by a single goroutine (the TUI update loop) and is not
// safe for concurrent use.
type Catalog struct {
	books  []Book
	logger *zap.Logger
}

func NewCatalog(logger *zap.Logger, books ...Book) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		books:  make([]Book, 0, len(books)),
		logger: logger,
	}
	c.books = append(c.books, books...)
	return c
}

func (c *Catalog) Add(book Book) {
	c.books = append(c.books, book)
	c.logger.Debug("book added",
		zap.String("id", book.ID),
		zap.String("title", book.Title),
		zap.Int("position", len(c.books)-1),
	)
}

// RemoveAt deletes the book at index. Out of range indexes are ignored and
// reported as false.
func (c *Catalog) RemoveAt(index int) bool {
	if !c.inRange(index) {
		c.outOfRange("remove", index)
		return false
	}
	removed := c.books[index]
	c.books = append(c.books[:index:index], c.books[index+1:]...)
	c.logger.Debug("book removed",
		zap.String("id", removed.ID),
		zap.String("title", removed.Title),
		zap.Int("position", index),
	)
	return true
}

// ToggleReadAt flips the read flag of the book at index. Out of range indexes
// are ignored and reported as false.
func (c *Catalog) ToggleReadAt(index int) bool {
	if !c.inRange(index) {
		c.outOfRange("toggle", index)
		return false
	}
	c.books[index].HasRead = !c.books[index].HasRead
	c.logger.Debug("read status toggled",
		zap.String("id", c.books[index].ID),
		zap.Int("position", index),
		zap.Bool("has_read", c.books[index].HasRead),
	)
	return true
}

// All returns a copy of the books in their current order.
func (c *Catalog) All() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Catalog) At(index int) (Book, bool) {
	if !c.inRange(index) {
		return Book{}, false
	}
	return c.books[index], true
}

func (c *Catalog) Len() int {
	return len(c.books)
}

func (c *Catalog) inRange(index int) bool {
	return index >= 0 && index < len(c.books)
}

func (c *Catalog) outOfRange(op string, index int) {
	c.logger.Warn("index out of range",
		zap.String("op", op),
		zap.Int("index", index),
		zap.Int("len", len(c.books)),
	)
}
