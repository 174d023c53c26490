package core

// Direction is a directional focus request
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return d
}

// Orientation returns the axis the direction moves along
func (d Direction) Orientation() Orientation {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// On reports whether the direction moves along the given axis
func (d Direction) On(o Orientation) bool {
	return d.Orientation() == o
}

// Forward reports whether the direction increases the coordinate (down or right)
func (d Direction) Forward() bool {
	return d == DirDown || d == DirRight
}
