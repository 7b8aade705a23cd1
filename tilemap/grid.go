package tilemap

import "fmt"

// Build constructs a Grid from text rows, one rune per column.
// It copies registry, so later changes to the caller's map do not leak in.
// Returns ErrMalformedGrid if rows is empty, any row is empty or lengths differ,
// ErrUnknownTile if a rune has no blueprint,
// ErrNegativeCost if a used blueprint is passable with a negative cost.
// Complexity: O(W×H) time and memory.
func Build(rows []string, registry Registry) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	runes := make([][]rune, len(rows))
	for y, row := range rows {
		runes[y] = []rune(row)
	}
	w := len(runes[0])
	for y, row := range runes {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrMalformedGrid, y)
		}
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, y, len(row), w)
		}
	}

	reg := make(Registry, len(registry))
	for tag, bp := range registry {
		reg[tag] = bp
	}

	g := &Grid{
		width:    w,
		height:   len(runes),
		cells:    make([][]Tile, len(runes)),
		registry: reg,
		index:    make(map[rune][]Point, len(reg)),
	}
	for y, row := range runes {
		g.cells[y] = make([]Tile, w)
		for x, r := range row {
			bp, ok := reg[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d, col %d", ErrUnknownTile, r, y, x)
			}
			if err := bp.validate(); err != nil {
				return nil, fmt.Errorf("%w: %q cost %d", err, r, bp.cost)
			}
			p := Point{X: x, Y: y}
			g.cells[y][x] = bp.Place(p)
			g.index[r] = append(g.index[r], p)
		}
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// RegisterType adds or replaces a blueprint. Existing cells are not touched.
func (g *Grid) RegisterType(t Tile) {
	g.mu.Lock()
	defer g.mu.Unlock()
	t.pos, t.placed = Point{}, false
	g.registry[t.tag] = t
}

// UnregisterType removes the blueprint for tag. Existing cells are not touched.
func (g *Grid) UnregisterType(tag rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.registry, tag)
}

// Blueprint returns the registered blueprint for tag.
func (g *Grid) Blueprint(tag rune) (Tile, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	t, ok := g.registry[tag]
	return t, ok
}

// TileAt returns the tile at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) TileAt(p Point) (Tile, error) {
	if !g.InBounds(p) {
		return Tile{}, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[p.Y][p.X], nil
}

// PositionsOf returns the positions holding tag, in insertion order.
// Cells are indexed row-major at Build; cells changed by Update go to the end.
// The result is a copy.
func (g *Grid) PositionsOf(tag rune) []Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	src := g.index[tag]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}

// Update places t at p, replacing the previous cell, and moves p in the
// location index from the old tag to the new one.
// t need not be registered (path markers, say).
// Returns ErrOutOfBounds or ErrNegativeCost; on error the grid is unchanged.
func (g *Grid) Update(p Point, t Tile) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("%w: %q cost %d", err, t.tag, t.cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	old := g.cells[p.Y][p.X]
	g.cells[p.Y][p.X] = t.Place(p)
	g.unindex(old.tag, p)
	g.index[t.tag] = append(g.index[t.tag], p)

	return nil
}

// unindex drops p from tag's entry, keeping the order of the rest.
// Caller holds mu.
func (g *Grid) unindex(tag rune, p Point) {
	ps := g.index[tag]
	for i, q := range ps {
		if q == p {
			ps = append(ps[:i], ps[i+1:]...)
			break
		}
	}
	if len(ps) == 0 {
		delete(g.index, tag)
		return
	}
	g.index[tag] = ps
}

// Render projects the grid back to text rows.
func (g *Grid) Render() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rows := make([]string, g.height)
	buf := make([]rune, g.width)
	for y, row := range g.cells {
		for x, t := range row {
			buf[x] = t.tag
		}
		rows[y] = string(buf)
	}
	return rows
}

// Counts returns the number of cells per tag currently on the grid.
func (g *Grid) Counts() map[rune]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[rune]int, len(g.index))
	for tag, ps := range g.index {
		out[tag] = len(ps)
	}
	return out
}
