package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Summarize the message directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, dir, err := loadCollection(args)
		if err != nil {
			return err
		}

		totalBytes := 0
		perDir := make(map[string]int)
		for msg := range col.All() {
			totalBytes += len(msg.Content)
			perDir[filepath.Dir(msg.SourceLabel)]++
		}

		fmt.Printf("Directory: %s\n", dir)
		fmt.Printf("Messages:  %d\n", col.Len())
		fmt.Printf("Content:   %d bytes\n", totalBytes)

		if len(perDir) > 1 {
			fmt.Println("\nBy source directory:")
			dirs := make([]string, 0, len(perDir))
			for d := range perDir {
				dirs = append(dirs, d)
			}
			sort.Strings(dirs)
			for _, d := range dirs {
				fmt.Printf("  %-40s %d\n", d, perDir[d])
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
