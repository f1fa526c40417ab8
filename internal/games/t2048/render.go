package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/loop-arcade/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// tileColor picks a colour by tile magnitude.
func tileColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorWhite
	case v <= 16:
		return core.ColorYellow
	case v <= 64:
		return core.ColorOrange
	case v <= 256:
		return core.ColorRed
	case v <= 1024:
		return core.ColorMagenta
	default:
		return core.ColorBrightCyan
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	boardW := Size*cellWidth + 1
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.gameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Max tile: %d  |  Press R to restart", MaxTile(g.board)))
	}
}

// renderHUD draws the score and the next milestone.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextColor(boardX+(boardW-4)/2, 0, "2048", core.ColorBrightYellow)
	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	info := "All milestones!"
	if m := NextMilestone(MaxTile(g.board)); m != nil {
		info = fmt.Sprintf("Next: %d", m.Tile)
	}
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)

	switch {
	case g.bannerLeft > 0 && g.banner != nil:
		msg := fmt.Sprintf("%d - %s!", g.banner.Tile, g.banner.Name)
		dst.DrawTextColor(boardX+(boardW-len(msg))/2, 2, msg, core.ColorBrightGreen)
	case g.won:
		msg := "You win! Keep going"
		dst.DrawTextColor(boardX+(boardW-len(msg))/2, 2, msg, core.ColorBrightGreen)
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y))

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range Size {
		for x := range Size {
			v := g.board[y][x]
			if v == 0 {
				continue
			}
			s := strconv.Itoa(v)
			pad := max(0, (cellWidth-1-len(s))/2)
			color := tileColor(v)
			if g.popLeft > 0 && g.lastSpawn == (Pos{x, y}) {
				color = core.ColorBrightWhite
			}
			dst.DrawTextColor(boardX+x*cellWidth+1+pad, boardY+y*cellHeight+1, s, color)
		}
	}
}

func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}
