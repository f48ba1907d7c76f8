package bough

import (
	"cmp"
	"slices"
	"time"
)

// FlexConfig configures a FlexLayout. The zero value is a row layout with
// flex-start justification, stretch alignment, no gap and no padding.
type FlexConfig struct {
	// Name identifies the layout in debug output only.
	Name       string
	Direction  Direction
	Justify    Justify
	AlignItems Align
	// Wrap is stored and reported but never wraps: all items share one line.
	Wrap    Wrap
	Gap     float64
	Padding Edges
}

// FlexItem is the per-child layout metadata wrapping an externally owned
// Component.
type FlexItem struct {
	Component Component
	// Flex is the CSS shorthand value. It is stored but not used in sizing.
	Flex   float64
	Grow   float64
	Shrink float64
	// Basis is stored but not used: natural size is always read from the
	// component.
	Basis     Value
	AlignSelf AlignSelf
	Order     int
}

// ItemOption configures a FlexItem added with AddChild.
type ItemOption func(*FlexItem)

// WithFlex sets the stored flex shorthand.
func WithFlex(v float64) ItemOption {
	return func(it *FlexItem) { it.Flex = v }
}

// WithGrow sets flex-grow. Negative values are treated as 0.
func WithGrow(v float64) ItemOption {
	return func(it *FlexItem) { it.Grow = max(v, 0) }
}

// WithShrink sets flex-shrink. Negative values are treated as 0.
func WithShrink(v float64) ItemOption {
	return func(it *FlexItem) { it.Shrink = max(v, 0) }
}

// WithBasis sets the stored flex-basis.
func WithBasis(v Value) ItemOption {
	return func(it *FlexItem) { it.Basis = v }
}

// WithAlignSelf overrides the layout's AlignItems for this item.
func WithAlignSelf(a AlignSelf) ItemOption {
	return func(it *FlexItem) { it.AlignSelf = a }
}

// WithOrder sets the item's order. Lower orders are laid out first; equal
// orders keep insertion order.
func WithOrder(order int) ItemOption {
	return func(it *FlexItem) { it.Order = order }
}

// newFlexItem returns an item with the per-field defaults applied.
func newFlexItem(c Component, opts []ItemOption) FlexItem {
	it := FlexItem{
		Component: c,
		Shrink:    1,
		Basis:     Auto(),
		AlignSelf: AlignSelfAuto,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// LayoutInfo is a read-only snapshot of a layout's configuration.
type LayoutInfo struct {
	Name         string
	Direction    Direction
	Justify      Justify
	AlignItems   Align
	Wrap         Wrap
	Gap          float64
	Padding      Edges
	ChildCount   int
	HasContainer bool
}

// FlexLayout computes positions and sizes for an ordered set of components
// inside a container. It writes geometry back through the Component
// interface and keeps no results of its own.
//
// FlexLayout is not safe for concurrent use.
type FlexLayout struct {
	cfg       FlexConfig
	container Component
	children  []FlexItem

	// reused per-pass buffers
	sorted []*FlexItem
	sizes  []float64
}

// NewFlexLayout creates a layout with the given configuration. A negative
// gap is clamped to 0.
func NewFlexLayout(cfg FlexConfig) *FlexLayout {
	cfg.Gap = max(cfg.Gap, 0)
	return &FlexLayout{cfg: cfg}
}

// Config returns the layout configuration.
func (l *FlexLayout) Config() FlexConfig {
	return l.cfg
}

// SetConfig replaces the configuration, keeping container and items. It
// does not run a layout pass.
func (l *FlexLayout) SetConfig(cfg FlexConfig) *FlexLayout {
	cfg.Gap = max(cfg.Gap, 0)
	l.cfg = cfg
	return l
}

// SetContainer replaces the container. A nil container makes
// CalculateLayout a no-op.
func (l *FlexLayout) SetContainer(c Component) *FlexLayout {
	l.container = c
	return l
}

// Container returns the current container, or nil.
func (l *FlexLayout) Container() Component {
	return l.container
}

// AddChild appends c with the given options. The same component may be
// added more than once; nothing deduplicates it.
func (l *FlexLayout) AddChild(c Component, opts ...ItemOption) *FlexLayout {
	l.children = append(l.children, newFlexItem(c, opts))
	if globalDebug {
		debugCheckItemCount(l)
	}
	return l
}

// RemoveChild removes the first item wrapping c. No-op if c is not a child.
func (l *FlexLayout) RemoveChild(c Component) *FlexLayout {
	for i := range l.children {
		if l.children[i].Component == c {
			l.children = slices.Delete(l.children, i, i+1)
			break
		}
	}
	return l
}

// Items returns a copy of the items in insertion order.
func (l *FlexLayout) Items() []FlexItem {
	return slices.Clone(l.children)
}

// NumChildren returns the number of items.
func (l *FlexLayout) NumChildren() int {
	return len(l.children)
}

// LayoutInfo returns a snapshot of the configuration and child count.
func (l *FlexLayout) LayoutInfo() LayoutInfo {
	return LayoutInfo{
		Name:         l.cfg.Name,
		Direction:    l.cfg.Direction,
		Justify:      l.cfg.Justify,
		AlignItems:   l.cfg.AlignItems,
		Wrap:         l.cfg.Wrap,
		Gap:          l.cfg.Gap,
		Padding:      l.cfg.Padding,
		ChildCount:   len(l.children),
		HasContainer: l.container != nil,
	}
}

// OnContainerResize recomputes the layout. Call it after the container's
// geometry has changed.
func (l *FlexLayout) OnContainerResize() {
	l.CalculateLayout()
}

// CalculateLayout lays out every child along a single line and writes the
// results back to the components. It does nothing without a container or
// children.
func (l *FlexLayout) CalculateLayout() {
	if l.container == nil || len(l.children) == 0 {
		return
	}

	var t0 time.Time
	if globalDebug {
		t0 = time.Now()
	}

	items := l.orderedItems()
	n := len(items)

	cx, cy := l.container.Position()
	cw, ch := l.container.Size()
	pad := l.cfg.Padding
	isRow := l.cfg.Direction.IsRow()

	var mainSize, crossSize float64
	if isRow {
		mainSize = cw - pad.Horizontal()
		crossSize = ch - pad.Vertical()
	} else {
		mainSize = ch - pad.Vertical()
		crossSize = cw - pad.Horizontal()
	}

	totalGap := l.cfg.Gap * float64(max(0, n-1))

	// Natural sizes are read before anything is written this pass.
	sizes := l.sizeBuffer(n)
	var totalNatural, totalGrow float64
	for i, it := range items {
		w, h := it.Component.Size()
		if isRow {
			sizes[i] = w
		} else {
			sizes[i] = h
		}
		totalNatural += sizes[i]
		totalGrow += it.Grow
	}

	remaining := mainSize - totalNatural - totalGap
	switch {
	case remaining > 0 && totalGrow > 0:
		for i, it := range items {
			if it.Grow > 0 {
				sizes[i] += remaining * (it.Grow / totalGrow)
			}
		}
	case remaining < 0:
		l.shrink(items, sizes, -remaining)
	}

	totalSize := totalGap
	for _, s := range sizes {
		totalSize += s
	}
	cursor := l.startOffset(mainSize, totalSize, n)

	for i, it := range items {
		c := it.Component
		size := sizes[i]
		align := it.AlignSelf.resolve(l.cfg.AlignItems)
		w, h := c.Size()
		if isRow {
			y, height := alignCross(align, cy+pad.Top, crossSize, h)
			c.SetPosition(cx+pad.Left+cursor, y)
			c.SetSize(size, height)
		} else {
			x, width := alignCross(align, cx+pad.Left, crossSize, w)
			c.SetPosition(x, cy+pad.Top+cursor)
			c.SetSize(width, size)
		}
		cursor += size + l.cfg.Gap
	}

	if l.cfg.Direction.IsReverse() {
		l.mirror(items, isRow, cx, cy, cw, ch)
	}

	if globalDebug {
		debugLogLayout(l, layoutStats{
			items:     n,
			mainSize:  mainSize,
			remaining: remaining,
			duration:  time.Since(t0),
		})
	}
}

// orderedItems returns the items stably sorted by Order.
func (l *FlexLayout) orderedItems() []*FlexItem {
	l.sorted = l.sorted[:0]
	for i := range l.children {
		l.sorted = append(l.sorted, &l.children[i])
	}
	slices.SortStableFunc(l.sorted, func(a, b *FlexItem) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return l.sorted
}

func (l *FlexLayout) sizeBuffer(n int) []float64 {
	if cap(l.sizes) < n {
		l.sizes = make([]float64, n)
	}
	l.sizes = l.sizes[:n]
	return l.sizes
}

// shrink removes deficit from sizes in proportion to natural size times
// shrink factor. Items with Shrink 0 keep their size and no size goes below 0.
// When every weighted size is 0 there is nothing to scale, so no shrink is
// applied.
func (l *FlexLayout) shrink(items []*FlexItem, sizes []float64, deficit float64) {
	var totalShrink, totalWeighted float64
	for i, it := range items {
		totalShrink += it.Shrink
		totalWeighted += sizes[i] * it.Shrink
	}
	if totalShrink <= 0 {
		return
	}
	if totalWeighted <= 0 {
		if globalDebug {
			debugWarn("layout %q: overflow %.2f with zero weighted size, shrink skipped", l.cfg.Name, deficit)
		}
		return
	}
	ratio := deficit / totalWeighted
	for i, it := range items {
		if it.Shrink > 0 {
			sizes[i] = max(0, sizes[i]-sizes[i]*it.Shrink*ratio)
		}
	}
}

// startOffset returns the main-axis cursor start for the justify mode.
func (l *FlexLayout) startOffset(mainSize, totalSize float64, n int) float64 {
	free := mainSize - totalSize
	switch l.cfg.Justify {
	case JustifyFlexEnd:
		return free
	case JustifyCenter:
		return free / 2
	case JustifySpaceAround:
		return free / float64(n*2)
	case JustifySpaceEvenly:
		return free / float64(n+1)
	default:
		// FlexStart and SpaceBetween.
		return 0
	}
}

// alignCross returns the cross-axis position and size of an item.
func alignCross(a Align, origin, crossSize, itemSize float64) (pos, size float64) {
	switch a {
	case AlignFlexEnd:
		return origin + crossSize - itemSize, itemSize
	case AlignCenter:
		return origin + (crossSize-itemSize)/2, itemSize
	case AlignStretch:
		return origin, crossSize
	default:
		// FlexStart and Baseline.
		return origin, itemSize
	}
}

// mirror flips every item's main-axis position around the container's outer
// edges.
func (l *FlexLayout) mirror(items []*FlexItem, isRow bool, cx, cy, cw, ch float64) {
	for _, it := range items {
		c := it.Component
		x, y := c.Position()
		w, h := c.Size()
		if isRow {
			c.SetPosition(cx+cw-(x-cx)-w, y)
		} else {
			c.SetPosition(x, cy+ch-(y-cy)-h)
		}
	}
}
