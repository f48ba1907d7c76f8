package bough

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is the top-level object that owns the node tree and keeps its
// layouts current.
type Scene struct {
	root  *Node
	debug bool

	// ClearColor fills the screen before nodes are drawn. A zero alpha skips
	// the clear.
	ClearColor Color

	// OutlineColor is used for node outlines in debug mode.
	OutlineColor Color

	updateFunc func() error
}

// NewScene creates a new scene with a root panel that lays out its flex
// children in a column.
func NewScene() *Scene {
	return &Scene{
		root:         NewPanel("root", FlexConfig{Direction: Column}),
		OutlineColor: Color{R: 1, G: 0.2, B: 0.6, A: 1},
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc sets a callback run at the start of every Update, before
// layout passes. An error returned from it stops Run.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Resize sets the root size and lays the tree out again.
func (s *Scene) Resize(width, height float64) {
	s.root.SetSize(width, height)
	s.root.UpdateLayout()
}

// Update runs the update callback and then any pending layout passes.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.root.UpdateLayout()
	return nil
}

// Draw fills each visible node with its Fill color in tree order. In debug
// mode every on-screen node's outline, and the content area of padded
// panels, is stroked on top.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	b := screen.Bounds()
	view := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	s.drawNode(screen, view, s.root, 0, 0)
}

// drawNode skips the fill of nodes entirely outside view. Children are
// still visited since they may overflow their parent.
func (s *Scene) drawNode(screen *ebiten.Image, view Rect, n *Node, ox, oy float64) {
	if !n.Visible {
		return
	}
	x, y := ox+n.X, oy+n.Y
	onScreen := view.Intersects(Rect{X: x, Y: y, Width: n.Width, Height: n.Height})
	if n.Fill.A > 0 && onScreen {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(n.Width), float32(n.Height), n.Fill.toRGBA(), false)
	}
	for _, child := range n.children {
		s.drawNode(screen, view, child, x, y)
	}
	if s.debug && onScreen {
		outline := s.OutlineColor.toRGBA()
		vector.StrokeRect(screen, float32(x), float32(y), float32(n.Width), float32(n.Height), 1, outline, false)
		if n.layout != nil && n.layout.cfg.Padding != (Edges{}) {
			c := n.ContentBounds()
			vector.StrokeRect(screen, float32(x+c.X), float32(y+c.Y), float32(c.Width), float32(c.Height), 1, outline, false)
		}
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, every
// layout pass is logged to stderr, and Draw outlines every node.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebug(enabled)
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
