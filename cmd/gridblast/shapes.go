package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridblast/internal/core"
	blastcore "github.com/vovakirdan/gridblast/internal/games/blast/core"
)

var flagShapesWidth int

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Print the piece catalog",
	Long: `Draws every piece that can appear in the tray, with its name
and cell count.

Examples:
  gridblast shapes
  gridblast shapes --width 120`,
	Args: cobra.NoArgs,
	Run:  runShapes,
}

func init() {
	shapesCmd.Flags().IntVar(&flagShapesWidth, "width", 80, "Output width in columns")
}

func runShapes(_ *cobra.Command, _ []string) {
	fmt.Print(renderCatalog(flagShapesWidth))
}

// renderCatalog lays the catalog out in a grid of equal boxes.
func renderCatalog(width int) string {
	shapes := blastcore.Shapes()
	labels := make([]string, len(shapes))
	labelW := 0
	for i, id := range shapes {
		labels[i] = fmt.Sprintf("%s (%d)", id, blastcore.CellCount(id))
		labelW = max(labelW, len(labels[i]))
	}

	extent := blastcore.MaxShapeExtent()
	boxW := max(extent*2, labelW) + 2 // two columns per cell
	boxH := extent + 2                // label, shape, blank line

	perRow := max(width/boxW, 1)
	rows := (len(shapes) + perRow - 1) / perRow

	screen := core.NewScreen(perRow*boxW, rows*boxH)
	for i, id := range shapes {
		x := (i % perRow) * boxW
		y := (i / perRow) * boxH

		screen.DrawText(x, y, labels[i])
		for _, p := range blastcore.Offsets(id) {
			screen.DrawText(x+p.X*2, y+1+p.Y, "██")
		}
	}
	return screen.String() + "\n"
}
