package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerbaras/bookshelf/pkg/app"
	"github.com/kerbaras/bookshelf/pkg/config"
	"github.com/kerbaras/bookshelf/pkg/logging"
	"github.com/kerbaras/bookshelf/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags
	cfgPath  string
	logLevel string
	logFile  string

	cfg        *config.Config
	logger     *zap.Logger
	controller *services.LibraryController
)

var rootCmd = &cobra.Command{
	Use:           "bookshelf",
	Short:         "A small personal library in your terminal",
	Long:          "Keep track of the books you own and which ones you have read, with a TUI and a few CLI helpers",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load(".env")

		path := cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.Logging.File = logFile
		}

		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return err
		}

		controller, err = services.NewLibraryController(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to build library: %w", err)
		}
		logger.Debug("command started", zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		return app.NewApp(controller).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $BOOKSHELF_CONFIG or ~/.bookshelf/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path, empty disables logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(exportCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// reportError prints a failed command's error. Field errors are skipped since
// add already printed them next to the field.
func reportError(w io.Writer, err error) {
	var fe *services.FieldError
	if errors.As(err, &fe) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}
