// Package viewport renders plate stacks through a tree of scrollable,
// clipped windows.
//
// # Overview
//
// A Viewport is placed at (Left, Top) inside its parent's content, is
// Width x Height cells large, and shows its plate stack starting at the scroll
// origin (FirstVisibleColumn, FirstVisibleRow). Viewports refer to their
// parent through Container, an ID into the owning Stack rather than a
// pointer, so removing a viewport never leaves a dangling reference behind.
// The Tree with parent, first-child and next-sibling links is derived from the
// Container relation and rebuilt whenever the set changes.
//
// # Rendering
//
// Stack.Render walks the tree in pre-order. Each viewport paints the cells
// of its own rectangle that also lie inside the region left visible by its
// ancestors, then hands the tightened region to its children. Siblings added
// later paint over earlier ones.
//
//	vs := viewport.NewStack()
//	root := vs.AddViewport(viewport.Viewport{Width: 80, Height: 24, Plates: frame})
//	form := vs.AddViewport(viewport.Viewport{Left: 1, Top: 1, Width: 40, Height: 22, Plates: fields, Container: root})
//	vs.Render(console)
//
// # Bringing content into view
//
// BringIntoView scrolls a viewport the least amount needed to show a point,
// then repeats the same for the point's position in each ancestor up to the
// root. BringRectIntoView does the same for a rectangle, first reducing it to
// the viewport size around its key point. After either call the target is
// visible through the whole ancestor chain.
//
// # Anomalies
//
// Degenerate rectangles draw nothing. A Container that names a removed
// viewport makes the child a root. Viewports caught in a Container cycle are
// unreachable from any root and are never drawn.
package viewport
