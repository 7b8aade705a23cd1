package direction

// Direction is one of the compass directions or None.
type Direction int8

// Compass directions in clockwise order, then None.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
	None
)

// Turn selects a rotation sense.
type Turn int8

const (
	// Left turns counter-clockwise.
	Left Turn = iota
	// Right turns clockwise.
	Right
)

// neighbors[d] = {counter-clockwise, clockwise} neighbor of d.
var neighbors = [...][2]Direction{
	N:    {NW, NE},
	NE:   {N, E},
	E:    {NE, SE},
	SE:   {E, S},
	S:    {SE, SW},
	SW:   {S, W},
	W:    {SW, NW},
	NW:   {W, N},
	None: {None, None},
}

var deltas = [...][2]int{
	N:    {0, -1},
	NE:   {1, -1},
	E:    {1, 0},
	SE:   {1, 1},
	S:    {0, 1},
	SW:   {-1, 1},
	W:    {-1, 0},
	NW:   {-1, -1},
	None: {0, 0},
}

var names = [...]string{
	N: "N", NE: "NE", E: "E", SE: "SE", S: "S", SW: "SW", W: "W", NW: "NW", None: "NONE",
}

// Rotate returns d turned one compass step in sense t.
// Unknown directions and turns yield None.
func Rotate(d Direction, t Turn) Direction {
	if !d.Valid() || (t != Left && t != Right) {
		return None
	}
	return neighbors[d][t]
}

// Left is Rotate(d, Left).
func (d Direction) Left() Direction { return Rotate(d, Left) }

// Right is Rotate(d, Right).
func (d Direction) Right() Direction { return Rotate(d, Right) }

// Opposite returns the direction pointing the other way; None stays None.
func (d Direction) Opposite() Direction {
	if !d.Valid() || d == None {
		return None
	}
	return (d + 4) % 8
}

// Delta returns the unit (dx, dy) step for d. None has delta (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// IsDiagonal reports whether d moves along both axes.
func (d Direction) IsDiagonal() bool {
	return d == NE || d == SE || d == SW || d == NW
}

// Valid reports whether d is one of the declared constants.
func (d Direction) Valid() bool { return d >= N && d <= None }

// String returns the short compass name ("N", "SE", "NONE").
func (d Direction) String() string {
	if !d.Valid() {
		return "INVALID"
	}
	return names[d]
}

// FromDelta maps a unit step back to its direction.
// ok is false when (dx, dy) is not a unit step; (0, 0) maps to None.
func FromDelta(dx, dy int) (d Direction, ok bool) {
	for i, v := range deltas {
		if v[0] == dx && v[1] == dy {
			return Direction(i), true
		}
	}
	return None, false
}

// Cardinals returns N, E, S, W.
func Cardinals() []Direction { return []Direction{N, E, S, W} }

// All returns the cardinals followed by NE, NW, SE, SW.
func All() []Direction { return []Direction{N, E, S, W, NE, NW, SE, SW} }
