package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reedham/msgsift/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export every message without opening the TUI",
	Long: `Load the message directory and export all messages to the artifact in
one step. Messages are selected by default at load time, so this writes
the whole collection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, dir, err := loadCollection(args)
		if err != nil {
			return err
		}

		path := exportOutput
		if path == "" {
			path = cfg.ArtifactPath(dir, time.Now())
		}

		if err := export.Write(col, path); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("Exported %d messages to %s\n", col.Len(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "export artifact path (default: from config, inside the message directory)")
}
