package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Layout of the play field in screen characters. Each cell is two
// characters wide so blocks look square in a terminal.
const (
	cellW      = 2
	wellW      = Width*cellW + 2 // board plus border
	wellH      = Height + 2
	panelGap   = 2
	panelW     = 4*cellW + 2
	panelH     = 2 + 2
	layoutW    = wellW + panelGap + panelW + 4
	layoutH    = wellH + 1 // status line below the well
	blockGlyph = "██"
	ghostGlyph = "[]"
	emptyGlyph = "  "
)

// kindColors assigns each shape its display color.
var kindColors = map[Kind]core.Color{
	KindI: core.ColorCyan,
	KindJ: core.ColorBlue,
	KindL: core.ColorOrange,
	KindO: core.ColorYellow,
	KindS: core.ColorGreen,
	KindT: core.ColorMagenta,
	KindZ: core.ColorRed,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < layoutW || dst.Height() < layoutH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", layoutW, layoutH))
		return
	}

	ox := core.Clamp((dst.Width()-layoutW)/2, 0, dst.Width())
	oy := core.Clamp((dst.Height()-layoutH)/2, 0, dst.Height())

	g.renderWell(dst, ox, oy)
	g.renderSidebar(dst, ox+wellW+panelGap, oy)

	// Status message centered under the well
	msg := g.message
	if len(msg) > wellW {
		msg = msg[:wellW]
	}
	dst.DrawText(ox+(wellW-len(msg))/2, oy+wellH, msg)

	switch {
	case g.IsOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the bordered board with ghost and live piece.
func (g *Game) renderWell(dst *core.Screen, ox, oy int) {
	dst.DrawBox(core.NewRect(ox, oy, wellW, wellH), core.ColorGray)

	board := g.RenderBoard()
	for row := range board {
		for col, cell := range board[row] {
			drawCell(dst, ox+1+col*cellW, oy+1+row, cell)
		}
	}
}

// renderSidebar draws the next-piece box and the counters.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, panelW, panelH), core.ColorGray)
	dst.DrawText(x+2, y, "Next")

	preview := g.RenderNextPiece()
	for row := range preview {
		for col, cell := range preview[row] {
			drawCell(dst, x+1+col*cellW, y+1+row, cell)
		}
	}

	stats := []string{
		fmt.Sprintf("Score  %d", g.score),
		fmt.Sprintf("Lines  %d", g.lines),
		fmt.Sprintf("Level  %d", g.Level()),
		fmt.Sprintf("Pieces %d", g.pieces),
	}
	for i, line := range stats {
		dst.DrawTextColored(x, y+panelH+1+i, line, core.ColorBrightWhite)
	}
}

// drawCell draws one board cell as two screen characters.
func drawCell(dst *core.Screen, x, y int, cell Cell) {
	switch {
	case cell.IsEmpty():
		dst.DrawText(x, y, emptyGlyph)
	case cell.IsGhost():
		dst.DrawTextColored(x, y, ghostGlyph, kindColors[cell.Kind()])
	default:
		dst.DrawTextColored(x, y, blockGlyph, kindColors[cell.Kind()])
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
