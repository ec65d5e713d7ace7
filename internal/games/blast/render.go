package blast

import (
	"fmt"

	platformcore "github.com/vovakirdan/gridblast/internal/core"
	"github.com/vovakirdan/gridblast/internal/games/blast/core"
)

const (
	cellW     = 2 // Terminal columns per board cell
	hudHeight = 2
	slotGap   = 2
)

// Glyphs for board cells.
var (
	glyphFilled  = []rune("██")
	glyphEmpty   = []rune("· ")
	glyphInvalid = []rune("▒▒")
)

// slotBox is the outer size of one tray slot.
func slotBox() (w, h int) {
	extent := core.MaxShapeExtent()
	return extent*cellW + 2, extent + 2
}

// trayWidth is the width of the three tray slots side by side.
func trayWidth() int {
	w, _ := slotBox()
	return core.QueueSize*w + (core.QueueSize-1)*slotGap
}

// layout computes board placement and the too-small flag.
func (g *Game) layout() {
	n := g.session.Size()
	boardW := n*cellW + 2
	boardH := n + 2
	_, slotH := slotBox()

	content := platformcore.NewRect(0, 0, max(boardW, trayWidth()), hudHeight+boardH+1+slotH+1)
	screen := platformcore.NewRect(0, 0, g.screenW, g.screenH)

	g.tooSmall = !screen.ContainsRect(content)
	g.boardX = (g.screenW - boardW) / 2
	g.boardY = hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderNotice(dst)
	g.renderTray(dst)

	if g.paused {
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and last clear.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	n := g.session.Size()
	title := fmt.Sprintf("%s  %dx%d", g.Title(), n, n)
	dst.DrawTextColored((g.screenW-len([]rune(title)))/2, 0, title, g.palette.Accent)

	left := g.boardX
	right := g.boardX + n*cellW + 2
	if tw := trayWidth(); tw > n*cellW+2 {
		left = (g.screenW - tw) / 2
		right = left + tw
	}

	dst.DrawText(left, 1, fmt.Sprintf("Score: %d", g.session.Score()))
	if last := describeClear(g.session.LastClear(), n); last != "" {
		dst.DrawTextColored(right-len([]rune(last)), 1, last, g.palette.Valid)
	}
}

// describeClear formats a clear as "+16 (1 row, 1 col)".
func describeClear(lc core.LineClear, size int) string {
	if lc.Empty() {
		return ""
	}
	parts := ""
	if r := len(lc.Rows); r > 0 {
		parts = plural(r, "row")
	}
	if c := len(lc.Cols); c > 0 {
		if parts != "" {
			parts += ", "
		}
		parts += plural(c, "col")
	}
	return fmt.Sprintf("+%d (%s)", lc.Score(size), parts)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// renderBoard draws the grid, the placed cells and the preview.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	n := g.session.Size()
	dst.DrawBoxColored(platformcore.NewRect(g.boardX, g.boardY, n*cellW+2, n+2), g.palette.Border)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c, _ := g.session.Coord(col, row)
			if g.session.IsFilled(c) {
				g.drawCell(dst, c, glyphFilled, g.palette.Filled)
			} else {
				g.drawCell(dst, c, glyphEmpty, g.palette.Empty)
			}
		}
	}

	cells, ok := g.preview()
	glyph, color := glyphFilled, g.palette.Valid
	if !ok {
		glyph, color = glyphInvalid, g.palette.Invalid
	}
	for _, c := range cells {
		g.drawCell(dst, c, glyph, color)
	}

	if g.selected < 0 {
		x, y := g.cellPos(g.anchor())
		dst.SetColored(x, y, '[', g.palette.Accent)
		dst.SetColored(x+1, y, ']', g.palette.Accent)
	}
}

// cellPos returns the screen position of a board cell.
func (g *Game) cellPos(c core.Coord) (x, y int) {
	return g.boardX + 1 + c.Col()*cellW, g.boardY + 1 + c.Row()
}

func (g *Game) drawCell(dst *platformcore.Screen, c core.Coord, glyph []rune, color platformcore.Color) {
	x, y := g.cellPos(c)
	for i, r := range glyph {
		dst.SetColored(x+i, y, r, color)
	}
}

// renderNotice draws the status line under the board.
func (g *Game) renderNotice(dst *platformcore.Screen) {
	y := g.boardY + g.session.Size() + 2
	switch g.notice {
	case NoticeNoFit:
		dst.DrawTextCentered(y, "Doesn't fit there")
	case NoticeSlotUsed:
		dst.DrawTextCentered(y, "That piece is already placed")
	case NoticeCleared:
		dst.DrawTextCentered(y, "Clear!")
	}
}

// renderTray draws the three queued pieces under the board.
func (g *Game) renderTray(dst *platformcore.Screen) {
	slotW, slotH := slotBox()
	x0 := (g.screenW - trayWidth()) / 2
	y0 := g.boardY + g.session.Size() + 3

	for slot, ps := range g.session.Queue() {
		x := x0 + slot*(slotW+slotGap)
		border := g.palette.Border
		if slot == g.selected {
			border = g.palette.Accent
		}
		dst.DrawBoxColored(platformcore.NewRect(x, y0, slotW, slotH), border)
		dst.DrawTextColored(x+1, y0, fmt.Sprintf("%d", slot+1), border)

		if ps.Used {
			dst.DrawTextColored(x+(slotW-4)/2, y0+slotH/2, "used", g.palette.Used)
			continue
		}

		color := g.palette.Filled
		if slot == g.selected {
			color = g.palette.Valid
		}
		w, h := core.Bounds(ps.Shape)
		ox := x + 1 + (slotW-2-w*cellW)/2
		oy := y0 + 1 + (slotH-2-h)/2
		for _, p := range core.Offsets(ps.Shape) {
			for i, r := range glyphFilled {
				dst.SetColored(ox+p.X*cellW+i, oy+p.Y, r, color)
			}
		}
	}
}

// drawOverlay draws a centered boxed message over the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	n := g.session.Size()
	boxX := g.boardX + (n*cellW+2-boxW)/2
	boxY := g.boardY + (n+2-boxH)/2

	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(platformcore.NewRect(boxX, boxY, boxW, boxH), g.palette.Accent)
	for i, line := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(line)))/2, boxY+1+i, line)
	}
}
