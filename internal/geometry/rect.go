// pattern: Functional Core

package geometry

import "fmt"

// Point is a cell position in global terminal coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair in cells.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Rect is a rectangle of cells. X and Y are the top-left corner.
type Rect struct {
	X      int `json:"x"`      // Left column (0-indexed)
	Y      int `json:"y"`      // Top row (0-indexed)
	Width  int `json:"width"`  // Width in cells
	Height int `json:"height"` // Height in lines
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point is inside the rectangle.
// Right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the raw intersection of two rectangles. Width and
// Height are negative when the rectangles are disjoint; callers that need
// a size should go through IntersectionSize.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Inset shrinks the rectangle by the given vertical insets. The result
// never has a negative height.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{X: r.X, Y: r.Y + in.Top, Width: r.Width, Height: r.Height - in.Top - in.Bottom}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Insets holds reserved rows at the top and bottom edges.
type Insets struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() int {
	return in.Top + in.Bottom
}

// IsZero returns true if no rows are reserved.
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Bottom == 0
}

// IntersectionSize returns the size of the overlap between a and b.
// A nil rectangle means "not measured yet" and yields a zero size.
// Disjoint, touching or inverted rectangles yield a zero size, never a
// negative dimension.
func IntersectionSize(a, b *Rect) Size {
	if a == nil || b == nil {
		return Size{}
	}
	overlap := a.Intersect(*b)
	if overlap.Width <= 0 || overlap.Height <= 0 {
		return Size{}
	}
	return overlap.Size()
}
