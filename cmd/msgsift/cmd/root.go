// Package cmd implements the msgsift command line interface.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reedham/msgsift/internal/config"
	"github.com/reedham/msgsift/internal/loader"
	"github.com/reedham/msgsift/internal/store"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "msgsift",
	Short: "Curate a directory of text messages and export a subset",
	Long: `msgsift is an interactive tool for curating a directory of plain text
messages. Every file in the directory is one message. Browse the
collection, toggle which messages are selected, and export the selected
subset to a single text artifact.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command with a background context.
// Prefer ExecuteContext for signal-aware execution.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with the given context,
// enabling graceful shutdown when the context is cancelled.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadCollection opens the message directory from args (default ".") and
// loads it into a collection.
func loadCollection(args []string) (*store.Collection, string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	scanner, err := loader.Open(dir)
	if err != nil {
		return nil, "", err
	}
	col, err := store.Load(scanner)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("loaded collection", "dir", scanner.Root(), "messages", col.Len())
	return col, scanner.Root(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.msgsift/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
