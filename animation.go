package bough

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// tweenFields selects which geometry a TweenGroup writes.
type tweenFields uint8

const (
	tweenPosition tweenFields = 1 << iota
	tweenSize
)

// TweenGroup animates a component's position, size, or both. Create one via
// TweenPosition, TweenSize or TweenBounds and call Update(dt) each frame. If
// the target is a disposed Node, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields tweenFields
	target Component
	Done   bool
}

func newTweenGroup(c Component, to Rect, fields tweenFields, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := boundsOf(c)
	g := &TweenGroup{target: c, fields: fields}
	g.tweens[0] = gween.New(float32(from.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(from.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(from.Height), float32(to.Height), duration, fn)
	return g
}

// Update advances the tweens by dt seconds and writes the interpolated
// geometry to the target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if n, ok := g.target.(*Node); ok && n.IsDisposed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	writeGeometry(g.target, Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, g.fields)
}

// writeGeometry sets the selected fields of r on c. A Node is resized
// without scheduling its parent's layout, so the parent's next UpdateLayout
// does not snap an animated child to its final rectangle.
func writeGeometry(c Component, r Rect, fields tweenFields) {
	n, isNode := c.(*Node)
	if fields&tweenPosition != 0 {
		c.SetPosition(r.X, r.Y)
	}
	if fields&tweenSize != 0 {
		if isNode {
			n.resize(r.Width, r.Height)
		} else {
			c.SetSize(r.Width, r.Height)
		}
	}
}

// TweenPosition animates c to (toX, toY) over duration seconds.
func TweenPosition(c Component, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	to := boundsOf(c)
	to.X, to.Y = toX, toY
	return newTweenGroup(c, to, tweenPosition, duration, fn)
}

// TweenSize animates c to (toW, toH) over duration seconds.
func TweenSize(c Component, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	to := boundsOf(c)
	to.Width, to.Height = toW, toH
	return newTweenGroup(c, to, tweenSize, duration, fn)
}

// TweenBounds animates c's position and size to the rectangle to.
func TweenBounds(c Component, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(c, to, tweenPosition|tweenSize, duration, fn)
}

// AnimateLayout runs a layout pass, puts every child back where it was, and
// returns one TweenGroup per child that moves it to its laid-out rectangle.
// Children whose geometry the pass did not change get no tween.
//
// For a panel's own layout (see Node.SetLayout) the animated pass stands in
// for the panel's pending layout pass, so the panel is left clean.
func AnimateLayout(l *FlexLayout, duration float32, fn ease.TweenFunc) []*TweenGroup {
	if l.container == nil || len(l.children) == 0 {
		return nil
	}
	if f, ok := l.container.(localFrame); ok {
		owner := f.n
		owner.layingOut = true
		defer func() {
			owner.layingOut = false
			owner.layoutDirty = false
		}()
	}
	before := make([]Rect, len(l.children))
	for i := range l.children {
		before[i] = boundsOf(l.children[i].Component)
	}

	l.CalculateLayout()

	var groups []*TweenGroup
	for i := range l.children {
		c := l.children[i].Component
		after := boundsOf(c)
		writeGeometry(c, before[i], tweenPosition|tweenSize)
		if after == before[i] {
			continue
		}
		groups = append(groups, TweenBounds(c, after, duration, fn))
	}
	return groups
}
