package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available tracks",
	Long: `Shows the tracks of the campaign in play order.

With --levels-dir the listing covers the custom directory instead of the
built-in campaign.`,
	Run: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	cat, err := loadCatalog(newLogger())
	if err != nil {
		cmd.PrintErrf("Error loading levels: %v\n", err)
		return
	}

	levels := cat.List()

	fmt.Println("Available tracks:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, lvl := range levels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Printf("  %-*s  %-*s  %8s  %6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Length", "Speed", "Obstacles")
	fmt.Printf("  %-*s  %-*s  %8s  %6s  %s\n", maxIDLen, "--", maxNameLen, "----", "------", "-----", "---------")

	for _, lvl := range levels {
		fmt.Printf("  %-*s  %-*s  %8.0f  %5.2fx  %9d\n",
			maxIDLen, lvl.ID, maxNameLen, lvl.Name, lvl.Length, lvl.SpeedMultiplier, len(lvl.Obstacles))
	}

	fmt.Println()
	fmt.Println("Run 'cuberush play <id>' to play a track.")
}
