package bough

// nodeIDCounter is a plain counter (no atomic, bough is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene-graph element with a rectangle in its parent's coordinate
// space. A node with a layout (see SetLayout) positions its flex children
// inside its own local frame, origin (0, 0) and size (Width, Height).
//
// Node implements Component, so any node can be a flex child.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Geometry, local to Parent. Prefer SetPosition and SetSize, which keep
	// layout dirty flags current; after writing the fields directly call
	// MarkLayoutDirty.
	X, Y          float64
	Width, Height float64

	// Appearance, used by Scene.Draw.
	Visible bool
	Fill    Color

	// Metadata
	UserData any

	// OnLayout is called after this node's layout pass positions its children.
	OnLayout func(n *Node)

	// Layout
	layout      *FlexLayout
	layoutDirty bool
	layingOut   bool

	disposed bool
}

// NewNode creates a node with no layout.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name, Visible: true}
}

// NewPanel creates a node that lays out its flex children with cfg.
// An empty cfg.Name defaults to the node name.
func NewPanel(name string, cfg FlexConfig) *Node {
	n := NewNode(name)
	n.SetLayout(cfg)
	return n
}

// --- Component ---

// Position returns the node's local position.
func (n *Node) Position() (x, y float64) { return n.X, n.Y }

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
}

// Size returns the node's size.
func (n *Node) Size() (width, height float64) { return n.Width, n.Height }

// SetSize resizes the node. A size change dirties this node's own layout
// and, unless the change comes from the parent's layout pass, the parent's
// layout too, since the node's natural size changed.
func (n *Node) SetSize(width, height float64) {
	if !n.resize(width, height) {
		return
	}
	if p := n.Parent; p != nil && p.layout != nil && !p.layingOut {
		p.layoutDirty = true
	}
}

// resize changes the node's size and dirties only its own layout. It
// reports whether the size changed.
func (n *Node) resize(width, height float64) bool {
	if n.Width == width && n.Height == height {
		return false
	}
	n.Width, n.Height = width, height
	n.layoutDirty = true
	return true
}

// Bounds returns the node's local rectangle.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// WorldBounds returns the node's rectangle in root coordinates.
func (n *Node) WorldBounds() Rect {
	r := n.Bounds()
	for p := n.Parent; p != nil; p = p.Parent {
		r.X += p.X
		r.Y += p.Y
	}
	return r
}

// ContentBounds returns the local-frame rectangle left for flex children
// once the layout's padding is taken off. Without a layout it is the whole
// local frame.
func (n *Node) ContentBounds() Rect {
	r := Rect{Width: n.Width, Height: n.Height}
	if n.layout != nil {
		r = r.Inset(n.layout.cfg.Padding)
	}
	return r
}

// --- Layout ---

// localFrame exposes a node as a layout container in its own coordinate
// space.
type localFrame struct{ n *Node }

func (f localFrame) Position() (x, y float64)      { return 0, 0 }
func (f localFrame) SetPosition(x, y float64)      {}
func (f localFrame) Size() (width, height float64) { return f.n.Width, f.n.Height }
func (f localFrame) SetSize(width, height float64) { f.n.SetSize(width, height) }

// SetLayout gives the node a flex layout, replacing any existing one. Flex
// children registered with the old layout are carried over with their
// options.
func (n *Node) SetLayout(cfg FlexConfig) *FlexLayout {
	if cfg.Name == "" {
		cfg.Name = n.Name
	}
	l := NewFlexLayout(cfg).SetContainer(localFrame{n})
	if n.layout != nil {
		l.children = n.layout.children
	}
	n.layout = l
	n.layoutDirty = true
	return l
}

// Layout returns the node's flex layout, or nil.
func (n *Node) Layout() *FlexLayout {
	return n.layout
}

// AddFlexChild adds child to the tree and to this node's layout.
// Panics if the node has no layout.
func (n *Node) AddFlexChild(child *Node, opts ...ItemOption) {
	if n.layout == nil {
		panic("bough: AddFlexChild on node without layout")
	}
	n.AddChild(child)
	n.layout.AddChild(child, opts...)
	n.layoutDirty = true
}

// MarkLayoutDirty schedules this node's layout pass for the next
// UpdateLayout.
func (n *Node) MarkLayoutDirty() {
	n.layoutDirty = true
}

// LayoutDirty reports whether a layout pass is pending.
func (n *Node) LayoutDirty() bool {
	return n.layoutDirty
}

// UpdateLayout runs pending layout passes in this subtree, parents before
// children. A child resized by its parent's pass becomes dirty itself and is
// laid out in the same call.
func (n *Node) UpdateLayout() {
	dirty := n.layoutDirty
	n.layoutDirty = false
	if n.layout != nil && dirty {
		n.layingOut = true
		n.layout.CalculateLayout()
		n.layingOut = false
		if n.OnLayout != nil {
			n.OnLayout(n)
		}
	}
	for _, child := range n.children {
		child.UpdateLayout()
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("bough: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("bough: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node and from its layout.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("bough: child's parent is not this node")
	}
	n.detach(child)
	child.Parent = nil
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("bough: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
	if n.layout != nil {
		clear(n.layout.children)
		n.layout.children = n.layout.children[:0]
		n.layoutDirty = true
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.layout = nil
	n.Parent = nil
	n.UserData = nil
	n.OnLayout = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// detach removes child from n.children and n's layout without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	if n.layout != nil {
		n.layout.RemoveChild(child)
		n.layoutDirty = true
	}
}
