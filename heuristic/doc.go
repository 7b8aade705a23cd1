// Package heuristic provides distance estimates for grid A* search.
//
// A Func estimates the remaining cost between two cells. For the search to
// return optimal paths the estimate must never exceed the true remaining
// cost (admissibility):
//
//   - Manhattan: |dx| + |dy|. Admissible and consistent for 4-directional
//     movement when every tile costs at least 1.
//   - Chebyshev: max(|dx|, |dy|). Admissible and consistent for 8-directional
//     movement when every step, diagonal included, costs at least 1.
//   - Zero: always 0. Admissible for any non-negative costs; turns A* into
//     Dijkstra.
//
// Pairing Manhattan with diagonal movement overestimates (a diagonal step
// covers two Manhattan units for cost 1) and loses the optimality guarantee.
// Tiles cheaper than 1 do the same to both distance heuristics. Nothing here
// enforces the pairing.
package heuristic
