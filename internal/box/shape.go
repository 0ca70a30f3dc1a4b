package box

// Shape is the side-presence pattern of a glyph.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeTopLeft
	ShapeTopRight
	ShapeBottomLeft
	ShapeBottomRight
	ShapeHorizontal
	ShapeVertical
	ShapeTeeRight // vertical with an arm to the right: ├
	ShapeTeeLeft  // vertical with an arm to the left: ┤
	ShapeTeeDown  // horizontal with an arm down: ┬
	ShapeTeeUp    // horizontal with an arm up: ┴
	ShapeCross
)

// Shapes lists the selectable shapes: four corners, two straight runs, four
// junctions and the cross.
var Shapes = []Shape{
	ShapeTopLeft, ShapeTopRight, ShapeBottomLeft, ShapeBottomRight,
	ShapeHorizontal, ShapeVertical,
	ShapeTeeRight, ShapeTeeLeft, ShapeTeeDown, ShapeTeeUp,
	ShapeCross,
}

var shapeNames = map[Shape]string{
	ShapeNone:        "none",
	ShapeTopLeft:     "top-left",
	ShapeTopRight:    "top-right",
	ShapeBottomLeft:  "bottom-left",
	ShapeBottomRight: "bottom-right",
	ShapeHorizontal:  "horizontal",
	ShapeVertical:    "vertical",
	ShapeTeeRight:    "tee-right",
	ShapeTeeLeft:     "tee-left",
	ShapeTeeDown:     "tee-down",
	ShapeTeeUp:       "tee-up",
	ShapeCross:       "cross",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "shape?"
}

// Sides returns the arms present in the shape, in Left, Right, Up, Down order.
func (s Shape) Sides() []Side {
	var out []Side
	for side, present := range s.presence() {
		if present {
			out = append(out, Side(side))
		}
	}
	return out
}

func (s Shape) presence() [sideCount]bool {
	switch s {
	case ShapeTopLeft:
		return [sideCount]bool{Right: true, Down: true}
	case ShapeTopRight:
		return [sideCount]bool{Left: true, Down: true}
	case ShapeBottomLeft:
		return [sideCount]bool{Right: true, Up: true}
	case ShapeBottomRight:
		return [sideCount]bool{Left: true, Up: true}
	case ShapeHorizontal:
		return [sideCount]bool{Left: true, Right: true}
	case ShapeVertical:
		return [sideCount]bool{Up: true, Down: true}
	case ShapeTeeRight:
		return [sideCount]bool{Right: true, Up: true, Down: true}
	case ShapeTeeLeft:
		return [sideCount]bool{Left: true, Up: true, Down: true}
	case ShapeTeeDown:
		return [sideCount]bool{Left: true, Right: true, Down: true}
	case ShapeTeeUp:
		return [sideCount]bool{Left: true, Right: true, Up: true}
	case ShapeCross:
		return [sideCount]bool{true, true, true, true}
	}
	return [sideCount]bool{}
}

// IsCorner reports whether the shape is one of the four corners, the only
// shapes with arc variants.
func (s Shape) IsCorner() bool {
	switch s {
	case ShapeTopLeft, ShapeTopRight, ShapeBottomLeft, ShapeBottomRight:
		return true
	}
	return false
}

func shapeOf(left, right, up, down bool) Shape {
	want := [sideCount]bool{Left: left, Right: right, Up: up, Down: down}
	for _, s := range Shapes {
		if s.presence() == want {
			return s
		}
	}
	return ShapeNone
}
