// Package tilemap holds the 2-D tile map that the pathfinding engine searches.
//
// What:
//
//   - Tile is an immutable descriptor of one cell: tag rune, passability, cost.
//     A blueprint has no position; Place clones it onto a concrete Point.
//   - Registry maps tag runes to blueprints.
//   - Grid owns the [row][col] cells, a copy of the registry and a location
//     index (tag → positions in insertion order) kept consistent by Update.
//   - Load/LoadFile read the plain text format: one line per row, one rune per
//     column, every rune registered.
//   - Components/Connected report connected regions of passable cells.
//
// Why:
//
//   - Game and agent maps where the same tile types repeat many times.
//   - Fast "where are all the g tiles" lookups without scanning the map.
//
// Complexity:
//
//   - Build:        O(W×H), Memory: O(W×H).
//   - TileAt:       O(1).
//   - Update:       O(k) where k = number of cells sharing the old tag.
//   - PositionsOf:  O(k) (returns a copy).
//   - Components:   O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//
// Errors:
//
//   - ErrMalformedGrid: input has no rows, an empty row or ragged rows.
//   - ErrUnknownTile:   a rune has no registered blueprint.
//   - ErrNegativeCost:  a passable tile carries a negative cost.
//   - ErrOutOfBounds:   a coordinate lies outside the grid.
//
// Concurrency:
//
//	Every Grid method takes the grid's RWMutex, so single calls never race.
//	A multi-call sequence (a whole search, say) is not atomic against Update;
//	callers serialize writers against readers.
package tilemap
