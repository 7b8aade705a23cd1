package tilemap

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for tilemap operations.
var (
	// ErrMalformedGrid indicates input has no rows, an empty row, or rows of differing length.
	ErrMalformedGrid = errors.New("tilemap: grid must be non-empty and rectangular")
	// ErrUnknownTile indicates a grid rune with no registered blueprint.
	ErrUnknownTile = errors.New("tilemap: no blueprint registered for tile")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("tilemap: coordinate out of bounds")
	// ErrNegativeCost indicates a passable tile with a negative traversal cost.
	ErrNegativeCost = errors.New("tilemap: passable tile has negative cost")
)

// Point is a grid coordinate: X is the column, Y is the row (growing downward).
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p shifted by (dx, dy).
func (p Point) Add(dx, dy int) Point { return Point{X: p.X + dx, Y: p.Y + dy} }

// String formats p as "(x,y)".
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Tile describes the traversal properties of one cell.
// Tiles are values; fields are unexported so a placed tile cannot drift from the index.
type Tile struct {
	tag      rune
	pos      Point
	placed   bool
	passable bool
	cost     int // meaningful only when passable
}

// Registry maps a tag rune to its blueprint tile.
type Registry map[rune]Tile

// Grid is a fixed-size 2-D array of placed tiles plus a blueprint registry
// and a location index. cells[y][x] holds the tile at Point{x, y}.
// mu guards all three; the index is only ever changed together with cells.
type Grid struct {
	mu       sync.RWMutex
	width    int
	height   int
	cells    [][]Tile
	registry Registry
	index    map[rune][]Point
}
