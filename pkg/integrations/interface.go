package integrations

import "github.com/kerbaras/bookshelf/pkg/data"

type Exporter interface {
	Export(title string, books []data.Book) (string, error)
}
