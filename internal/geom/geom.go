// Package geom holds the plain geometry used by the game: positions, sizes and
// axis-aligned boxes. It has no dependency on the terminal front end.
package geom

// Position is a top-left canvas coordinate in pixels.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Box is an axis-aligned rectangle defined by its top-left corner and size.
type Box struct {
	Position `yaml:",inline"`
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
}

// NewBox creates a box at (x, y) with the given dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{Position: Position{X: x, Y: y}, Width: w, Height: h}
}

func (b Box) Right() int {
	return b.X + b.Width
}

func (b Box) Bottom() int {
	return b.Y + b.Height
}

func (b Box) Size() Size {
	return Size{Width: b.Width, Height: b.Height}
}

// At returns a copy of the box moved to p.
func (b Box) At(p Position) Box {
	b.Position = p
	return b
}

// Translate returns a copy of the box shifted by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Intersects reports whether a and b overlap. Boxes that only share an edge
// do not intersect.
func Intersects(a, b Box) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// IntersectsAny returns the index of the first box in others that overlaps b,
// or -1 when none does.
func IntersectsAny(b Box, others []Box) int {
	for i, o := range others {
		if Intersects(b, o) {
			return i
		}
	}
	return -1
}

// Within reports whether b lies completely inside a canvas of the given size.
func Within(b Box, canvas Size) bool {
	return b.X >= 0 && b.Y >= 0 && b.Right() <= canvas.Width && b.Bottom() <= canvas.Height
}

// ClampInto moves b the least amount needed to keep it inside the canvas.
// A box larger than the canvas is pinned to the origin.
func ClampInto(b Box, canvas Size) Box {
	b.X = Clamp(b.X, 0, canvas.Width-b.Width)
	b.Y = Clamp(b.Y, 0, canvas.Height-b.Height)
	return b
}

// Clamp restricts val to [min, max]. When max < min, min wins.
func Clamp(val, min, max int) int {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}
