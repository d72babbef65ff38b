package hexgrid

import "fmt"

// Direction addresses one of the six edges of a hex, expressed in degrees.
// Direction 0 points straight up and values increase clockwise in 60 degree
// steps. Only the six values listed in [Directions] are valid.
type Direction int

// The six valid directions.
const (
	Up        Direction = 0
	UpRight   Direction = 60
	DownRight Direction = 120
	Down      Direction = 180
	DownLeft  Direction = 240
	UpLeft    Direction = 300
)

// Directions lists all six directions in ascending angle order.
// Use this to iterate the edges of a tile.
var Directions = [6]Direction{Up, UpRight, DownRight, Down, DownLeft, UpLeft}

// offsets maps each direction to the coordinate delta of the neighbor in
// that direction. Horizontal neighbors are a full x unit away; diagonal
// neighbors move half a y unit, which is why y is a float.
var offsets = [6]struct {
	dx int
	dy float64
}{
	{0, -1},    // Up
	{1, -0.5},  // UpRight
	{1, 0.5},   // DownRight
	{0, 1},     // Down
	{-1, 0.5},  // DownLeft
	{-1, -0.5}, // UpLeft
}

var directionNames = [6]string{"up", "up-right", "down-right", "down", "down-left", "up-left"}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool {
	return d >= 0 && d < 360 && d%60 == 0
}

// Opposite returns the direction rotated by 180 degrees. A tile's neighbor
// at d links back at d.Opposite().
func (d Direction) Opposite() Direction {
	return (d + 180) % 360
}

// Next returns the direction rotated 60 degrees clockwise.
func (d Direction) Next() Direction {
	return (d + 60) % 360
}

// Prev returns the direction rotated 60 degrees counter-clockwise.
func (d Direction) Prev() Direction {
	return (d + 300) % 360
}

// Offset returns the coordinate delta a neighbor at this direction is
// placed at, relative to the linking tile.
func (d Direction) Offset() (dx int, dy float64) {
	o := offsets[d.index()]
	return o.dx, o.dy
}

// String returns a human-readable name such as "up-right".
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d.index()]
}

// index converts the direction's angle into an array slot in [0, 6).
func (d Direction) index() int {
	return int(d) / 60
}
