package physics

// Bounds is the axis-aligned rectangle enclosing the playable area.
type Bounds struct {
	Left, Right float64
	Bottom, Top float64
}

// NewBounds creates bounds of the given width and height centered on the
// origin.
func NewBounds(width, height int) Bounds {
	w := float64(width)
	h := float64(height)
	return Bounds{
		Left:   -w / 2,
		Right:  w / 2,
		Bottom: -h / 2,
		Top:    h / 2,
	}
}

// Outside reports whether point lies outside the bounds, and if so returns
// the inward-pointing wall normal. The x and y axes are checked
// independently and combined additively, so a point past a corner yields a
// diagonal, non-unit normal; callers must normalize before reflecting.
func (b Bounds) Outside(point Vec2) (Vec2, bool) {
	var normal Vec2
	if point.X < b.Left {
		normal.X = 1
	} else if point.X > b.Right {
		normal.X = -1
	}
	if point.Y < b.Bottom {
		normal.Y = 1
	} else if point.Y > b.Top {
		normal.Y = -1
	}
	return normal, !normal.IsZero()
}

// Min returns the bottom-left corner.
func (b Bounds) Min() Vec2 {
	return Vec2{b.Left, b.Bottom}
}

// Max returns the top-right corner.
func (b Bounds) Max() Vec2 {
	return Vec2{b.Right, b.Top}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.Top - b.Bottom
}
