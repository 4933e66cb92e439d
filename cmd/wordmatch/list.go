package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/word-match/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available packs",
	Long:  `Shows a list of all word packs built into the game.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func runList(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println(headerStyle.Render("Available packs:"))
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Levels", "Pairs", "Title")
	fmt.Printf("  %-*s  %-6s  %-5s  %s\n", maxIDLen, "--", "------", "-----", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %-5d  %s\n", maxIDLen, p.ID, p.Levels, p.Pairs, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wordmatch play <id>' to play a pack.")
}
