package tilemap

// NewTile returns a blueprint tile (no position).
// For impassable tiles cost is kept but never read by the search.
func NewTile(tag rune, passable bool, cost int) Tile {
	return Tile{tag: tag, passable: passable, cost: cost}
}

// Wall returns an impassable blueprint for tag.
func Wall(tag rune) Tile { return Tile{tag: tag} }

// Floor returns a passable blueprint for tag with the given cost.
func Floor(tag rune, cost int) Tile { return Tile{tag: tag, passable: true, cost: cost} }

// Place clones t onto p.
func (t Tile) Place(p Point) Tile {
	t.pos = p
	t.placed = true
	return t
}

// Tag returns the rune that represents t in the text format.
func (t Tile) Tag() rune { return t.tag }

// Passable reports whether the search may enter t.
func (t Tile) Passable() bool { return t.passable }

// Cost returns the price of stepping onto t.
func (t Tile) Cost() int { return t.cost }

// Position returns the grid coordinate of a placed tile; ok is false for blueprints.
func (t Tile) Position() (p Point, ok bool) { return t.pos, t.placed }

// validate rejects passable tiles that would break non-negative path costs.
func (t Tile) validate() error {
	if t.passable && t.cost < 0 {
		return ErrNegativeCost
	}
	return nil
}
