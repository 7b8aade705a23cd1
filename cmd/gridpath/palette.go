package main

import "github.com/katalvlaran/gridpath/tilemap"

// demoPalette is the tile set of the bundled maps: box-drawing walls, open
// floor, gold and the player.
func demoPalette() tilemap.Registry {
	return tilemap.Registry{
		'-': tilemap.NewTile('-', false, -99),
		'|': tilemap.NewTile('|', false, -99),
		'+': tilemap.NewTile('+', false, -99),
		' ': tilemap.Floor(' ', 1),
		'g': tilemap.Floor('g', 1),
		'o': tilemap.Floor('o', 1),
	}
}
