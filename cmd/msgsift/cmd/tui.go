package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/reedham/msgsift/internal/tui"
)

var tuiOutput string

var tuiCmd = &cobra.Command{
	Use:   "tui [dir]",
	Short: "Open the interactive curation session",
	Long: `Open an interactive terminal session over the message directory
(default: current directory). Every message starts selected.

Navigation:
  ↑/k, ↓/j    Move up/down
  PgUp/PgDn   Page up/down
  Enter       View message
  Esc         Back / quit

Selection:
  Space       Toggle the focused message
  a           Select all
  x           Deselect all

Command mode (:):
  export                  Write the selected messages to the artifact
  select all|<a> <b>      Select all / an id range
  deselect all|<a> <b>    Deselect all / an id range
  toggle [id]             Toggle the focused message or a specific id
  q, quit                 End the session (no autosave)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			return fmt.Errorf("stdout is not a terminal (use 'msgsift export' for non-interactive use)")
		}

		col, dir, err := loadCollection(args)
		if err != nil {
			return err
		}

		exportPath := tuiOutput
		if exportPath == "" {
			exportPath = cfg.ArtifactPath(dir, time.Now())
		}

		model := tui.New(col, tui.Options{
			SourceDir:  dir,
			ExportPath: exportPath,
			ShowSource: cfg.UI.ShowSource,
			Version:    Version,
		})
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run tui: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringVarP(&tuiOutput, "output", "o", "", "export artifact path (default: from config, inside the message directory)")
}
