package office

import (
	"math"

	"github.com/vovakirdan/loop-arcade/internal/physics"
)

// Tile is the side of one floor tile in map pixels.
const Tile = 16

// floorPlan is the office seen from above, one rune per tile: '#' wall,
// 'D' desk or furniture, anything else floor. Row 0 is the top of the
// screen and rows grow along +Z.
var floorPlan = []string{
	"################################################################",
	"#..............#.........#..........#..........................#",
	"#..DDD.........#..DDDD...#..........#...DD...DD...DD...DD......#",
	"#..............#..DDDD...#..DDDD....#...DD...DD...DD...DD......#",
	"#..............#.........#..DDDD....#..........................#",
	"#######..###########..####..........#..........................#",
	"#..........................................................DD..#",
	"#..........................................................DD..#",
	"#...DD...DD...DD.......DD...DD...DD.......#######..#######.....#",
	"#...DD...DD...DD.......DD...DD...DD.......#..............#.....#",
	"#.........................................#...DDDDDD.....#.....#",
	"#.........................................#...DDDDDD.....#.....#",
	"#...DD...DD...DD.......DD...DD...DD.......#..............#.....#",
	"#...DD...DD...DD.......DD...DD...DD.......################.....#",
	"#..............................................................#",
	"#..........................................................DD..#",
	"#######..########.....#############..######################....#",
	"#...............#.....#...........#............................#",
	"#..DD...........#.....#...DDDDD...#.....DD..DD..DD.......D.....#",
	"################################################################",
}

const (
	wallHeight = 32
	spawnCol   = 24
	spawnRow   = 6
)

var (
	bodySize = physics.Vec{X: 12, Y: 16, Z: 12}
	bounds   = physics.Box{
		Max: physics.Vec{X: float64(cols() * Tile), Y: wallHeight, Z: float64(rows() * Tile)},
	}
)

// cols and rows are the floor plan size in tiles.
func cols() int { return len(floorPlan[0]) }
func rows() int { return len(floorPlan) }

func tileAt(col, row int) byte {
	if row < 0 || row >= rows() || col < 0 || col >= cols() {
		return '#'
	}
	return floorPlan[row][col]
}

func solidTile(c byte) bool { return c == '#' || c == 'D' }

// tileCentre is the floor point at the middle of a tile.
func tileCentre(col, row int) physics.Vec {
	return physics.Vec{X: float64(col*Tile + Tile/2), Z: float64(row*Tile + Tile/2)}
}

// tileOf is the tile under a floor point.
func tileOf(p physics.Vec) (int, int) {
	return int(math.Floor(p.X / Tile)), int(math.Floor(p.Z / Tile))
}

// solid is one run of same-kind tiles on a row.
type solid struct {
	box  physics.Box
	kind byte
}

// solids merges each row's runs of wall and desk tiles into boxes.
func solids() []solid {
	var out []solid
	for row, line := range floorPlan {
		for col := 0; col < len(line); {
			c := line[col]
			if !solidTile(c) {
				col++
				continue
			}
			end := col
			for end < len(line) && line[end] == c {
				end++
			}
			out = append(out, solid{kind: c, box: physics.Box{
				Min: physics.Vec{X: float64(col * Tile), Z: float64(row * Tile)},
				Max: physics.Vec{X: float64(end * Tile), Y: wallHeight, Z: float64((row + 1) * Tile)},
			}})
			col = end
		}
	}
	return out
}
