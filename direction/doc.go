// Package direction defines the eight compass directions plus None, with a
// fixed rotation table and unit grid deltas.
//
// Rotation is a pure table lookup: Left is the counter-clockwise compass
// neighbor, Right the clockwise one, and None rotates to None.
//
// Deltas use screen orientation: N is (0,-1), S is (0,+1), E is (+1,0).
package direction
