// Package ecs runs bough flex layouts over entities in a [Donburi] world.
//
// Container entities carry [Geometry] and [FlexContainer]; child entities
// carry [Geometry] and [FlexChild], which names the container entity. Each
// call to [LayoutSystem] lays out every container, outermost first, writing
// the results into the children's Geometry and publishing one
// [LayoutEventType] event per container.
//
// Usage:
//
//	panel := ecs.NewContainer(world, bough.Rect{Width: 320, Height: 40}, bough.FlexConfig{Gap: 4})
//	ecs.NewChild(world, panel, bough.Rect{Width: 32, Height: 32}, bough.WithGrow(1))
//	ecs.LayoutSystem(world)
//
// All geometry is in world coordinates; a nested container's children are
// positioned inside the container's own Geometry.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
