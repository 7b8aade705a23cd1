// Package view projects a grid and a found path for display.
//
// Overlay returns plain text rows with the path drawn in; Draw paints rows
// onto any tcell canvas with per-tag styles. Neither touches the grid.
package view
