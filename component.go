package bough

// Component is anything whose geometry a layout may read and write. The
// component keeps ownership of its geometry; a layout only ever goes through
// these accessors.
type Component interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (width, height float64)
	SetSize(width, height float64)
}

// Box is a plain mutable rectangle implementing Component. Use a *Box as a
// standalone container or as a leaf child with no scene-graph presence.
type Box struct {
	X, Y, Width, Height float64
}

// NewBox returns a Box with the given geometry.
func NewBox(x, y, width, height float64) *Box {
	return &Box{X: x, Y: y, Width: width, Height: height}
}

func (b *Box) Position() (x, y float64) { return b.X, b.Y }
func (b *Box) SetPosition(x, y float64) { b.X, b.Y = x, y }
func (b *Box) Size() (width, height float64) { return b.Width, b.Height }
func (b *Box) SetSize(width, height float64) { b.Width, b.Height = width, height }

// Rect returns the box geometry as a Rect value.
func (b *Box) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// boundsOf reads a component's geometry into a Rect.
func boundsOf(c Component) Rect {
	x, y := c.Position()
	w, h := c.Size()
	return Rect{X: x, Y: y, Width: w, Height: h}
}
