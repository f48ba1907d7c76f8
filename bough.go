package bough

import (
	"fmt"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Inset returns r shrunk by e on each side. Width and height never go below 0.
func (r Rect) Inset(e Edges) Rect {
	out := Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  r.Width - e.Left - e.Right,
		Height: r.Height - e.Top - e.Bottom,
	}
	out.Width = max(out.Width, 0)
	out.Height = max(out.Height, 0)
	return out
}

// Edges holds spacing on four sides, in CSS order.
type Edges struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric returns Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(vertical, horizontal float64) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeTRBL returns Edges following CSS order: top, right, bottom, left.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns Left + Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// --- Enumerations ---
//
// Every enum's zero value is the CSS default so that a zero FlexConfig is a
// usable row layout. Text forms are the CSS keywords and are used by fixtures.

// Direction selects the main axis and whether items run in reverse.
type Direction uint8

const (
	Row           Direction = iota // left to right
	RowReverse                     // right to left
	Column                         // top to bottom
	ColumnReverse                  // bottom to top
)

var directionNames = [...]string{"row", "row-reverse", "column", "column-reverse"}

// IsRow reports whether the main axis is horizontal.
func (d Direction) IsRow() bool { return d == Row || d == RowReverse }

// IsReverse reports whether items are mirrored along the main axis.
func (d Direction) IsReverse() bool { return d == RowReverse || d == ColumnReverse }

func (d Direction) String() string { return enumString(directionNames[:], int(d)) }

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := parseEnum("direction", directionNames[:], text)
	if err != nil {
		return err
	}
	*d = Direction(v)
	return nil
}

// Justify distributes items along the main axis.
type Justify uint8

const (
	JustifyFlexStart Justify = iota // pack at the start
	JustifyFlexEnd                  // pack at the end
	JustifyCenter                   // pack around the center
	// JustifySpaceBetween currently starts at offset 0 and adds no spacing
	// beyond Gap; items are packed exactly like JustifyFlexStart.
	JustifySpaceBetween
	JustifySpaceAround // start offset = free / (n*2), no per-item spacing
	JustifySpaceEvenly // start offset = free / (n+1), no per-item spacing
)

var justifyNames = [...]string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}

func (j Justify) String() string { return enumString(justifyNames[:], int(j)) }

// MarshalText implements encoding.TextMarshaler.
func (j Justify) MarshalText() ([]byte, error) { return []byte(j.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Justify) UnmarshalText(text []byte) error {
	v, err := parseEnum("justify-content", justifyNames[:], text)
	if err != nil {
		return err
	}
	*j = Justify(v)
	return nil
}

// Align positions items along the cross axis.
type Align uint8

const (
	AlignStretch   Align = iota // fill the cross axis
	AlignFlexStart              // cross start
	AlignFlexEnd                // cross end
	AlignCenter                 // centered
	// AlignBaseline has no font metrics to work with and behaves exactly like
	// AlignFlexStart.
	AlignBaseline
)

var alignNames = [...]string{"stretch", "flex-start", "flex-end", "center", "baseline"}

func (a Align) String() string { return enumString(alignNames[:], int(a)) }

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := parseEnum("align-items", alignNames[:], text)
	if err != nil {
		return err
	}
	*a = Align(v)
	return nil
}

// AlignSelf overrides the layout's AlignItems for one item.
type AlignSelf uint8

const (
	AlignSelfAuto AlignSelf = iota // use the layout's AlignItems
	AlignSelfFlexStart
	AlignSelfFlexEnd
	AlignSelfCenter
	AlignSelfBaseline
	AlignSelfStretch
)

var alignSelfNames = [...]string{"auto", "flex-start", "flex-end", "center", "baseline", "stretch"}

func (a AlignSelf) String() string { return enumString(alignSelfNames[:], int(a)) }

// resolve returns the effective cross-axis alignment given the layout default.
func (a AlignSelf) resolve(def Align) Align {
	switch a {
	case AlignSelfFlexStart:
		return AlignFlexStart
	case AlignSelfFlexEnd:
		return AlignFlexEnd
	case AlignSelfCenter:
		return AlignCenter
	case AlignSelfBaseline:
		return AlignBaseline
	case AlignSelfStretch:
		return AlignStretch
	default:
		return def
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a AlignSelf) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AlignSelf) UnmarshalText(text []byte) error {
	v, err := parseEnum("align-self", alignSelfNames[:], text)
	if err != nil {
		return err
	}
	*a = AlignSelf(v)
	return nil
}

// Wrap is accepted for configuration parity with CSS but is not implemented:
// every value lays items out on a single line.
type Wrap uint8

const (
	NoWrap Wrap = iota
	WrapLines
	WrapReverse
)

var wrapNames = [...]string{"nowrap", "wrap", "wrap-reverse"}

func (w Wrap) String() string { return enumString(wrapNames[:], int(w)) }

// MarshalText implements encoding.TextMarshaler.
func (w Wrap) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Wrap) UnmarshalText(text []byte) error {
	v, err := parseEnum("flex-wrap", wrapNames[:], text)
	if err != nil {
		return err
	}
	*w = Wrap(v)
	return nil
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto Unit = iota
	UnitFixed
	UnitPercent
)

// Value is a dimension that is either auto, a fixed amount, or a percentage.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that sizes to content.
func Auto() Value { return Value{Unit: UnitAuto} }

// Fixed returns a fixed Value.
func Fixed(v float64) Value { return Value{Amount: v, Unit: UnitFixed} }

// Percent returns a percentage Value.
func Percent(p float64) Value { return Value{Amount: p, Unit: UnitPercent} }

// IsAuto reports whether v is auto.
func (v Value) IsAuto() bool { return v.Unit == UnitAuto }

func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return fmt.Sprintf("%g", v.Amount)
	case UnitPercent:
		return fmt.Sprintf("%g%%", v.Amount)
	default:
		return "auto"
	}
}

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func parseEnum(kind string, names []string, text []byte) (int, error) {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "" {
		return 0, nil
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("bough: unknown %s %q", kind, s)
}
