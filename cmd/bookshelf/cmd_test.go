package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command in an isolated environment and returns its
// output.
func run(t *testing.T, cfgBody string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	if cfgBody != "" {
		require.NoError(t, os.WriteFile(cfgFile, []byte(cfgBody), 0644))
	}
	t.Setenv(config.EnvConfigPath, cfgFile)
	t.Setenv(config.EnvLogFile, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvExportDir, filepath.Join(dir, "exports"))

	resetFlags(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag back to its default so values from one run do
// not leak into the next.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(reset)
	}
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Library (3 books)")
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "Ann M. Martin")
	assert.Contains(t, out, "1138")
	assert.Contains(t, out, "not read yet")
}

func TestListCommandConfiguredSeed(t *testing.T) {
	out, err := run(t, "seed:\n  samples: false\n  books:\n    - {title: Dune, author: Frank Herbert, pages: 412}\n", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Library (1 books)")
	assert.Contains(t, out, "Dune")
	assert.NotContains(t, out, "The Hobbit")
}

func TestListCommandEmpty(t *testing.T) {
	out, err := run(t, "seed:\n  samples: false\n", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No books in library")
}

func TestInvalidSeedFailsStartup(t *testing.T) {
	_, err := run(t, "seed:\n  books:\n    - {title: Dune, author: '', pages: 412}\n", "list")
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrMissingAuthor))
}

func TestAddCommand(t *testing.T) {
	out, err := run(t, "", "add", "--title", "Dune", "--author", "Frank Herbert", "--pages", "412", "--read")
	require.NoError(t, err)

	assert.Contains(t, out, "Added: Dune by Frank Herbert, 412 pages, has read")
	assert.True(t, strings.Index(out, "The Hobbit") < strings.LastIndex(out, "Dune"))
}

func TestAddCommandRejectsZeroPages(t *testing.T) {
	out, err := run(t, "", "add", "--title", "Dune", "--author", "Frank Herbert", "--pages", "0")
	require.Error(t, err)

	assert.True(t, errors.Is(err, services.ErrInvalidPageCount))
	assert.Contains(t, out, "pages: Please enter a page count between 1 and 100000.")
	assert.NotContains(t, out, "Error:")
}

func TestAddCommandRejectsOversizedPages(t *testing.T) {
	out, err := run(t, "", "add", "--title", "Dune", "--author", "Frank Herbert", "--pages", "9223372036854775807")
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidPageCount))
	assert.Contains(t, out, "pages: Please enter a page count between 1 and 100000.")
}

func TestAddCommandFlagsDoNotLeak(t *testing.T) {
	_, err := run(t, "", "add", "--title", "Dune", "--author", "Frank Herbert", "--pages", "412", "--read")
	require.NoError(t, err)

	out, err := run(t, "", "add", "--title", "Emma", "--author", "Jane Austen", "--pages", "474")
	require.NoError(t, err)
	assert.Contains(t, out, "Added: Emma by Jane Austen, 474 pages, not read yet")
}

func TestReportError(t *testing.T) {
	var out bytes.Buffer
	reportError(&out, &services.FieldError{Field: services.FieldPages, Err: services.ErrInvalidPageCount})
	assert.Empty(t, out.String())

	reportError(&out, errors.New("failed to parse config"))
	assert.Equal(t, "Error: failed to parse config\n", out.String())
}

func TestAddCommandRejectsMissingTitle(t *testing.T) {
	out, err := run(t, "", "add", "--title", "", "--author", "Frank Herbert", "--pages", "10")
	require.Error(t, err)

	assert.True(t, errors.Is(err, services.ErrMissingTitle))
	assert.Contains(t, out, "title: Please enter a title.")
}

func TestExportCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out")

	out, err := run(t, "export:\n  title: Shelf\n", "export", "--dir", target)
	require.NoError(t, err)

	assert.Contains(t, out, "EPUB created")
	_, statErr := os.Stat(filepath.Join(target, "Shelf.epub"))
	assert.NoError(t, statErr)
}

func TestExportCommandDefaultDir(t *testing.T) {
	out, err := run(t, "", "export")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("exports", "My Library.epub"))
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "abcdefg...", truncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncateString("abcdef", 2))
}
