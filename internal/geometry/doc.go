// Package geometry provides the immutable rectangle arithmetic used by the
// viewport tree.
//
// # Overview
//
// A Rectangle is an axis-aligned cell area with a distinguished key point, the
// cell that scrolling logic must keep visible (for example a text cursor).
// Rectangles are values; every operation returns a new Rectangle.
//
// # Reduction
//
// Reducer shrinks a rectangle that is larger than a viewport down to the
// viewport size. The key point always stays inside the result, and among the
// windows that satisfy that, the one closest to the preferred origin is chosen
// so a viewport that is already scrolled does not jump back to the leading edge.
//
//	r := geometry.NewRectangle(0, 0, 40, 3).WithKey(30, 1)
//	small := geometry.Reducer{PreferCol: 10}.Reduce(r, 20, 3)
//	// small covers columns 11..30 and still contains the key point
//
// # Scroll selection
//
// SelectValue computes a one-dimensional scroll origin: keep the current origin
// when the target is already inside the window, otherwise snap so the target
// sits on the nearer edge.
package geometry
