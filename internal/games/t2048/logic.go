package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Size is the board dimension.
const Size = 4

// Board is the grid, indexed [y][x]. Zero is an empty cell.
type Board [Size][Size]int

// Pos is a board cell.
type Pos struct {
	X, Y int
}

// line returns the cells of row or column i, starting from the edge tiles
// slide toward.
func line(dir Direction, i int) [Size]Pos {
	var out [Size]Pos
	for j := range Size {
		switch dir {
		case DirLeft:
			out[j] = Pos{j, i}
		case DirRight:
			out[j] = Pos{Size - 1 - j, i}
		case DirUp:
			out[j] = Pos{i, j}
		case DirDown:
			out[j] = Pos{i, Size - 1 - j}
		}
	}
	return out
}

// mergeLine packs tiles toward index 0. A tile produced by a merge is
// never merged again in the same move.
func mergeLine(in [Size]int) (out [Size]int, score int) {
	w := 0
	merged := false
	for _, v := range in {
		if v == 0 {
			continue
		}
		if w > 0 && !merged && out[w-1] == v {
			out[w-1] *= 2
			score += out[w-1]
			merged = true
			continue
		}
		out[w] = v
		w++
		merged = false
	}
	return out, score
}

// Slide performs a move in the given direction.
// Returns the new board, score gained, and whether the board changed.
func Slide(b Board, dir Direction) (Board, int, bool) {
	if dir < DirUp || dir > DirRight {
		return b, 0, false
	}
	var next Board
	score := 0
	for i := range Size {
		cells := line(dir, i)
		var vals [Size]int
		for j, p := range cells {
			vals[j] = b[p.Y][p.X]
		}
		out, s := mergeLine(vals)
		score += s
		for j, p := range cells {
			next[p.Y][p.X] = out[j]
		}
	}
	return next, score, next != b
}

// EmptyCells returns all empty cells in row-major order.
func EmptyCells(b Board) []Pos {
	var cells []Pos
	for y := range Size {
		for x := range Size {
			if b[y][x] == 0 {
				cells = append(cells, Pos{x, y})
			}
		}
	}
	return cells
}

// CanMove reports whether any direction would change the board.
func CanMove(b Board) bool {
	for y := range Size {
		for x := range Size {
			v := b[y][x]
			if v == 0 {
				return true
			}
			if x < Size-1 && b[y][x+1] == v {
				return true
			}
			if y < Size-1 && b[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the highest tile on the board.
func MaxTile(b Board) int {
	best := 0
	for y := range Size {
		for x := range Size {
			best = max(best, b[y][x])
		}
	}
	return best
}
