// Package bough is a flexbox-style layout engine for in-canvas UI in 2D
// games built on [Ebitengine].
//
// The core is [FlexLayout]: given a container and an ordered set of
// children, it computes and writes back each child's position and size in a
// single line along a main axis. Layout never draws anything; it only reads
// and writes geometry through the [Component] interface.
//
// # Quick start
//
//	container := bough.NewBox(0, 0, 300, 40)
//	a := bough.NewBox(0, 0, 100, 20)
//	b := bough.NewBox(0, 0, 100, 20)
//
//	layout := bough.NewFlexLayout(bough.FlexConfig{Gap: 4, AlignItems: bough.AlignCenter}).
//		SetContainer(container).
//		AddChild(a, bough.WithGrow(1)).
//		AddChild(b, bough.WithGrow(3))
//	layout.CalculateLayout()
//
// Call [FlexLayout.OnContainerResize] after changing the container's
// geometry. Natural sizes are read fresh from the components on every pass,
// so a grown item's new size is its natural size on the next pass.
//
// # Algorithm
//
// A pass sorts children by order (stable), measures natural sizes, hands
// spare main-axis space to items with a positive grow factor or takes
// overflow from items with a positive shrink factor (weighted by natural
// size, never below 0), offsets the line according to [Justify], places each
// item with the configured gap, aligns it on the cross axis, and finally
// mirrors positions for the reverse directions.
//
// Some CSS behavior is deliberately absent: [Wrap] never wraps,
// [JustifySpaceBetween] adds no spacing beyond the gap, the space-around and
// space-evenly modes only shift the start of the line, and [AlignBaseline]
// behaves like [AlignFlexStart].
//
// # Scene graph
//
// [Node] is a minimal scene-graph element that implements Component. A node
// created with [NewPanel] owns a layout and positions its flex children in
// its own coordinate space:
//
//	scene := bough.NewScene()
//	header := bough.NewNode("header")
//	header.SetSize(0, 48)
//	scene.Root().AddFlexChild(header)
//	scene.Root().AddFlexChild(bough.NewPanel("body", bough.FlexConfig{}), bough.WithGrow(1))
//
//	bough.Run(scene, bough.RunConfig{Title: "Panels", Width: 640, Height: 480, Resizable: true})
//
// Resizing the window resizes the root, and [Scene.Update] runs every pending
// layout pass, parents before children.
//
// # Tweens and fixtures
//
// [AnimateLayout] turns a layout pass into [TweenGroup] values (via [gween])
// so children glide to their new rectangles. [LoadFixture] reads JSON layout
// scenarios for regression tests.
//
// The bough/ecs module runs layouts over [Donburi] entities.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package bough
