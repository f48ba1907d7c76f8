package bough

import (
	"encoding/json"
	"fmt"
)

// fixtureConfig mirrors FlexConfig with the CSS property names.
type fixtureConfig struct {
	Direction      Direction `json:"direction"`
	JustifyContent Justify   `json:"justifyContent"`
	AlignItems     Align     `json:"alignItems"`
	FlexWrap       Wrap      `json:"flexWrap"`
	Gap            float64   `json:"gap"`
	Padding        Edges     `json:"padding"`
}

// fixtureItem describes one child: its natural size and flex properties.
// FlexShrink defaults to 1 when omitted.
type fixtureItem struct {
	Name       string    `json:"name,omitempty"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	FlexGrow   float64   `json:"flexGrow,omitempty"`
	FlexShrink *float64  `json:"flexShrink,omitempty"`
	AlignSelf  AlignSelf `json:"alignSelf,omitempty"`
	Order      int       `json:"order,omitempty"`
}

// fixtureFile is the top-level JSON structure for a layout fixture.
type fixtureFile struct {
	Name      string        `json:"name"`
	Container Rect          `json:"container"`
	Config    fixtureConfig `json:"config"`
	Items     []fixtureItem `json:"items"`
	Passes    int           `json:"passes,omitempty"`
}

// Fixture is a self-contained layout scenario: a container, a configuration
// and children with natural sizes. Fixtures are loaded from JSON with
// LoadFixture and evaluated with Run.
type Fixture struct {
	Name      string
	Container Rect
	Config    FlexConfig
	passes    int
	items     []fixtureItem
}

// LoadFixture parses a JSON layout fixture.
func LoadFixture(jsonData []byte) (*Fixture, error) {
	var f fixtureFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("parse fixture %q: no items", f.Name)
	}
	if f.Container.Width < 0 || f.Container.Height < 0 {
		return nil, fmt.Errorf("parse fixture %q: negative container size", f.Name)
	}
	passes := f.Passes
	if passes < 1 {
		passes = 1
	}
	return &Fixture{
		Name:      f.Name,
		Container: f.Container,
		Config: FlexConfig{
			Name:       f.Name,
			Direction:  f.Config.Direction,
			Justify:    f.Config.JustifyContent,
			AlignItems: f.Config.AlignItems,
			Wrap:       f.Config.FlexWrap,
			Gap:        f.Config.Gap,
			Padding:    f.Config.Padding,
		},
		passes: passes,
		items:  f.Items,
	}, nil
}

// Passes returns how many consecutive layout passes Run performs.
func (f *Fixture) Passes() int {
	return f.passes
}

// Run builds fresh boxes from the fixture, lays them out Passes times and
// returns the rectangles after each pass, in item (insertion) order.
func (f *Fixture) Run() [][]Rect {
	c := f.Container
	container := NewBox(c.X, c.Y, c.Width, c.Height)
	l := NewFlexLayout(f.Config).SetContainer(container)

	boxes := make([]*Box, len(f.items))
	for i, it := range f.items {
		boxes[i] = NewBox(0, 0, it.Width, it.Height)
		opts := []ItemOption{
			WithGrow(it.FlexGrow),
			WithAlignSelf(it.AlignSelf),
			WithOrder(it.Order),
		}
		if it.FlexShrink != nil {
			opts = append(opts, WithShrink(*it.FlexShrink))
		}
		l.AddChild(boxes[i], opts...)
	}

	out := make([][]Rect, 0, f.passes)
	for range f.passes {
		l.CalculateLayout()
		pass := make([]Rect, len(boxes))
		for i, b := range boxes {
			pass[i] = b.Rect()
		}
		out = append(out, pass)
	}
	return out
}
