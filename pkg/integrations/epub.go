package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/bookshelf/pkg/data"
)

// EPubExporter writes a catalog snapshot as an EPUB reading list.
type EPubExporter struct {
	outputDir string
	now       func() time.Time
}

func NewEPubExporter(outputDir string) *EPubExporter {
	return &EPubExporter{outputDir: outputDir, now: time.Now}
}

// Export writes one EPUB holding the full list followed by the read and
// unread books, and returns its path.
func (x *EPubExporter) Export(title string, books []data.Book) (string, error) {
	if len(books) == 0 {
		return "", fmt.Errorf("no books to export")
	}
	if title == "" {
		title = "Library"
	}

	if err := os.MkdirAll(x.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("bookshelf")
	e.SetDescription(fmt.Sprintf("%d books, exported %s", len(books), x.now().Format("2006-01-02")))
	e.SetLang("en")

	var read, unread []data.Book
	for _, b := range books {
		if b.HasRead {
			read = append(read, b)
		} else {
			unread = append(unread, b)
		}
	}

	sections := []struct {
		title string
		books []data.Book
	}{
		{"All books", books},
		{"Read", read},
		{"Not read yet", unread},
	}
	for i, s := range sections {
		filename := fmt.Sprintf("section%02d.xhtml", i+1)
		if _, err := e.AddSection(sectionBody(s.title, s.books), s.title, filename, ""); err != nil {
			return "", fmt.Errorf("failed to add section %q: %w", s.title, err)
		}
	}

	outputPath := filepath.Join(x.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

func sectionBody(title string, books []data.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(title))
	if len(books) == 0 {
		b.WriteString("<p>None.</p>\n")
		return b.String()
	}
	b.WriteString("<ol>\n")
	for _, book := range books {
		fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(book.Info()))
	}
	b.WriteString("</ol>\n")
	return b.String()
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "library"
	}
	return result
}
