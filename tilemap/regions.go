package tilemap

var (
	orthogonalOffsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonalOffsets   = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Components finds all contiguous regions of passable cells.
// With diagonal=false regions connect through N, E, S, W only; with
// diagonal=true the four corner neighbors count as well.
// Regions are returned in row-major order of their first cell; each region
// lists its cells in BFS order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(diagonal bool) [][]Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.components(diagonal)
}

// Connected reports whether a and b are passable and lie in the same region.
// A search between cells of different regions can never succeed.
func (g *Grid) Connected(a, b Point, diagonal bool) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if !g.cells[a.Y][a.X].passable || !g.cells[b.Y][b.X].passable {
		return false
	}
	label := g.labels(diagonal)
	return label[g.offset(a)] == label[g.offset(b)]
}

// components floods every unseen passable cell in row-major order. Caller holds mu.
func (g *Grid) components(diagonal bool) [][]Point {
	seen := make([]bool, g.width*g.height)
	offsets := neighborOffsets(diagonal)
	var comps [][]Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if seen[y*g.width+x] || !g.cells[y][x].passable {
				continue
			}
			comps = append(comps, g.flood(Point{X: x, Y: y}, offsets, seen))
		}
	}
	return comps
}

// labels maps each cell to its region number, or -1 when impassable. Caller holds mu.
func (g *Grid) labels(diagonal bool) []int {
	label := make([]int, g.width*g.height)
	for i := range label {
		label[i] = -1
	}
	for n, comp := range g.components(diagonal) {
		for _, p := range comp {
			label[g.offset(p)] = n
		}
	}
	return label
}

// flood collects the region containing start with a BFS, marking seen.
// Caller holds mu and guarantees start is passable and unseen.
func (g *Grid) flood(start Point, offsets [][2]int, seen []bool) []Point {
	seen[g.offset(start)] = true
	queue := []Point{start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			v := u.Add(d[0], d[1])
			if !g.InBounds(v) || !g.cells[v.Y][v.X].passable {
				continue
			}
			if vi := g.offset(v); !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}
	return queue
}

// offset maps p to a row-major index: y*Width + x.
func (g *Grid) offset(p Point) int {
	return p.Y*g.width + p.X
}

func neighborOffsets(diagonal bool) [][2]int {
	if diagonal {
		return diagonalOffsets
	}
	return orthogonalOffsets
}
