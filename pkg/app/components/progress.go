package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/bookshelf/pkg/app/styles"
	"github.com/kerbaras/bookshelf/pkg/services"
)

// ReadingProgress shows how much of the library has been read.
type ReadingProgress struct {
	summary services.Summary
	width   int
}

func NewReadingProgress(width int) *ReadingProgress {
	return &ReadingProgress{width: width}
}

func (p *ReadingProgress) Update(summary services.Summary) {
	p.summary = summary
}

func (p *ReadingProgress) SetWidth(width int) {
	p.width = width
}

func (p *ReadingProgress) View() string {
	s := p.summary
	if s.Books == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(
		fmt.Sprintf("Read %d of %d books (%d/%d pages)", s.BooksRead, s.Books, s.PagesRead, s.Pages),
	))
	b.WriteString("\n")
	b.WriteString(renderProgressBar(s.PagesRead, s.Pages, p.width-4))
	b.WriteString("\n")
	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	filled = max(0, min(filled, width))

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}
