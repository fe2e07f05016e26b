package services

import (
	"fmt"

	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/kerbaras/bookshelf/pkg/data"
	"github.com/kerbaras/bookshelf/pkg/integrations"
	"go.uber.org/zap"
)

// LibraryController owns the catalog for the lifetime of the process and
// wires it to the presenter and the exporter.
type LibraryController struct {
	catalog     *data.Catalog
	presenter   *Presenter
	exporter    integrations.Exporter
	exportTitle string
	logger      *zap.Logger
}

func NewLibraryController(cfg *config.Config, logger *zap.Logger) (*LibraryController, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	seed, err := SeedBooks(cfg.Seed)
	if err != nil {
		return nil, err
	}

	catalog := data.NewCatalog(logger.Named("catalog"), seed...)
	logger.Info("catalog seeded", zap.Int("books", catalog.Len()))

	return &LibraryController{
		catalog:     catalog,
		presenter:   NewPresenter(catalog, logger.Named("presenter")),
		exporter:    integrations.NewEPubExporter(cfg.Export.Dir),
		exportTitle: cfg.Export.Title,
		logger:      logger,
	}, nil
}

// SeedBooks builds the starting books: the samples (when enabled) followed by
// the configured books, each validated like an intake submission.
func SeedBooks(seed config.SeedConfig) ([]data.Book, error) {
	var books []data.Book
	if seed.Samples {
		books = append(books, data.SampleBooks()...)
	}
	for i, bc := range seed.Books {
		book, err := Submission{
			Title:    bc.Title,
			Author:   bc.Author,
			NumPages: bc.Pages,
			HasRead:  bc.Read,
		}.Validate()
		if err != nil {
			return nil, fmt.Errorf("seed book %d: %w", i+1, err)
		}
		books = append(books, book)
	}
	return books, nil
}

func (c *LibraryController) Catalog() *data.Catalog {
	return c.catalog
}

func (c *LibraryController) Presenter() *Presenter {
	return c.presenter
}

// Export writes the current catalog with the configured exporter.
func (c *LibraryController) Export() (string, error) {
	return c.ExportBooks(c.catalog.All())
}

// ExportBooks writes a snapshot taken earlier. It does not touch the catalog,
// so it may run off the UI loop.
func (c *LibraryController) ExportBooks(books []data.Book) (string, error) {
	path, err := c.exporter.Export(c.exportTitle, books)
	if err != nil {
		c.logger.Error("export failed", zap.Error(err))
		return "", fmt.Errorf("export failed: %w", err)
	}
	c.logger.Info("catalog exported", zap.String("path", path), zap.Int("books", len(books)))
	return path, nil
}
