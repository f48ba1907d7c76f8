package ecs

import (
	"cmp"
	"slices"

	"github.com/phanxgames/bough"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// FlexChildData is the per-entity flex configuration of a child.
type FlexChildData struct {
	Parent    donburi.Entity
	Grow      float64
	Shrink    float64
	AlignSelf bough.AlignSelf
	Order     int
	// seq preserves creation order, which is the layout's insertion order.
	seq uint64
}

// LayoutEvent is published after a container's layout pass.
type LayoutEvent struct {
	Container donburi.Entity
	Bounds    bough.Rect
	Children  int
}

var (
	// Geometry holds an entity's rectangle in world coordinates.
	Geometry = donburi.NewComponentType[bough.Rect]()
	// FlexContainer marks an entity whose FlexChild entities are laid out.
	FlexContainer = donburi.NewComponentType[bough.FlexConfig]()
	// FlexChild attaches an entity to a container.
	FlexChild = donburi.NewComponentType[FlexChildData]()

	// LayoutEventType is the Donburi event type for finished layout passes.
	LayoutEventType = events.NewEventType[LayoutEvent]()
)

var (
	containerQuery = donburi.NewQuery(filter.Contains(Geometry, FlexContainer))
	childQuery     = donburi.NewQuery(filter.Contains(Geometry, FlexChild))
)

// childSeq is a plain counter (no atomic, layout runs on one goroutine).
var childSeq uint64

// NewContainer creates a container entity.
func NewContainer(w donburi.World, bounds bough.Rect, cfg bough.FlexConfig) donburi.Entity {
	e := w.Create(Geometry, FlexContainer)
	entry := w.Entry(e)
	Geometry.SetValue(entry, bounds)
	FlexContainer.SetValue(entry, cfg)
	return e
}

// NewChild creates a child entity of parent with the given natural size
// and item options. Options are resolved once, at creation.
func NewChild(w donburi.World, parent donburi.Entity, bounds bough.Rect, opts ...bough.ItemOption) donburi.Entity {
	e := w.Create(Geometry, FlexChild)
	entry := w.Entry(e)
	Geometry.SetValue(entry, bounds)
	FlexChild.SetValue(entry, newChildData(parent, opts))
	return e
}

// MakeContainer adds FlexContainer to an existing entity, which may itself
// be a FlexChild, to nest layouts.
func MakeContainer(w donburi.World, e donburi.Entity, cfg bough.FlexConfig) {
	entry := w.Entry(e)
	if !entry.HasComponent(FlexContainer) {
		entry.AddComponent(FlexContainer)
	}
	FlexContainer.SetValue(entry, cfg)
}

func newChildData(parent donburi.Entity, opts []bough.ItemOption) FlexChildData {
	item := bough.FlexItem{Shrink: 1, Basis: bough.Auto()}
	for _, opt := range opts {
		opt(&item)
	}
	childSeq++
	return FlexChildData{
		Parent:    parent,
		Grow:      item.Grow,
		Shrink:    item.Shrink,
		AlignSelf: item.AlignSelf,
		Order:     item.Order,
		seq:       childSeq,
	}
}

// rectRef exposes a Geometry component as a bough.Component.
type rectRef struct{ r *bough.Rect }

func (c rectRef) Position() (x, y float64)      { return c.r.X, c.r.Y }
func (c rectRef) SetPosition(x, y float64)      { c.r.X, c.r.Y = x, y }
func (c rectRef) Size() (width, height float64) { return c.r.Width, c.r.Height }
func (c rectRef) SetSize(width, height float64) { c.r.Width, c.r.Height = width, height }

// LayoutSystem lays out every container in w, outermost first, so a nested
// container is sized by its parent before its own children are placed.
// Children whose parent is not a live container are left untouched.
func LayoutSystem(w donburi.World) {
	children := make(map[donburi.Entity][]*donburi.Entry)
	childQuery.Each(w, func(entry *donburi.Entry) {
		p := FlexChild.Get(entry).Parent
		children[p] = append(children[p], entry)
	})

	type pending struct {
		entry *donburi.Entry
		depth int
	}
	var containers []pending
	containerQuery.Each(w, func(entry *donburi.Entry) {
		containers = append(containers, pending{entry: entry, depth: depthOf(w, entry)})
	})
	slices.SortStableFunc(containers, func(a, b pending) int {
		return cmp.Compare(a.depth, b.depth)
	})

	for _, c := range containers {
		kids := children[c.entry.Entity()]
		slices.SortFunc(kids, func(a, b *donburi.Entry) int {
			return cmp.Compare(FlexChild.Get(a).seq, FlexChild.Get(b).seq)
		})

		bounds := Geometry.Get(c.entry)
		l := bough.NewFlexLayout(*FlexContainer.Get(c.entry)).SetContainer(rectRef{bounds})
		for _, k := range kids {
			d := FlexChild.Get(k)
			l.AddChild(rectRef{Geometry.Get(k)},
				bough.WithGrow(d.Grow),
				bough.WithShrink(d.Shrink),
				bough.WithAlignSelf(d.AlignSelf),
				bough.WithOrder(d.Order),
			)
		}
		l.CalculateLayout()

		LayoutEventType.Publish(w, LayoutEvent{
			Container: c.entry.Entity(),
			Bounds:    *bounds,
			Children:  len(kids),
		})
	}
}

// depthOf counts FlexChild links from entry up to a root container. Broken
// or cyclic links stop the walk.
func depthOf(w donburi.World, entry *donburi.Entry) int {
	depth := 0
	seen := map[donburi.Entity]bool{entry.Entity(): true}
	for entry.HasComponent(FlexChild) {
		p := FlexChild.Get(entry).Parent
		if seen[p] || !w.Valid(p) {
			break
		}
		seen[p] = true
		entry = w.Entry(p)
		depth++
	}
	return depth
}
