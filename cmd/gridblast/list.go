package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridblast/internal/games/blast"
	"github.com/vovakirdan/gridblast/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered variant with its board size.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	cfg := blast.ActiveConfig()
	sizes := map[string]int{
		string(blast.VariantClassic): cfg.Board.Size,
		string(blast.VariantXL):      cfg.Board.XLSize,
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, g := range games {
		board := "-"
		if n, ok := sizes[g.ID]; ok {
			board = fmt.Sprintf("%dx%d", n, n)
		}
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, g.ID, board, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gridblast play <id>' to play a variant.")
}
