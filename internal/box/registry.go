package box

// Registry is the classified glyph catalogue partitioned by shape. Build it
// once with NewRegistry and share it; it is read-only afterwards.
type Registry struct {
	usable   []BoxCharacter
	excluded []BoxCharacter
	buckets  map[Shape][]int
	bySource map[rune]int
}

// NewRegistry classifies the whole box drawing block. Glyphs with unparsed
// name tokens, or whose arms form none of the selectable shapes, are kept
// aside in Excluded and never selected.
func NewRegistry() *Registry {
	r := &Registry{
		buckets:  make(map[Shape][]int, len(Shapes)),
		bySource: make(map[rune]int, len(glyphTable)),
	}
	for _, g := range glyphTable {
		c := Classify(g.Name, g.Source)
		shape := c.Shape()
		if !c.Parsed() || shape == ShapeNone {
			r.excluded = append(r.excluded, c)
			continue
		}
		idx := len(r.usable)
		r.usable = append(r.usable, c)
		r.buckets[shape] = append(r.buckets[shape], idx)
		r.bySource[c.Source] = idx
	}
	return r
}

// Usable returns the selectable glyphs in code point order.
func (r *Registry) Usable() []BoxCharacter {
	return append([]BoxCharacter(nil), r.usable...)
}

// Excluded returns the glyphs left out of selection.
func (r *Registry) Excluded() []BoxCharacter {
	return append([]BoxCharacter(nil), r.excluded...)
}

// Bucket returns the selectable glyphs of one shape.
func (r *Registry) Bucket(shape Shape) []BoxCharacter {
	idx := r.buckets[shape]
	out := make([]BoxCharacter, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.usable[i])
	}
	return out
}

// Lookup returns the usable glyph for a code point.
func (r *Registry) Lookup(source rune) (BoxCharacter, bool) {
	i, ok := r.bySource[source]
	if !ok {
		return BoxCharacter{}, false
	}
	return r.usable[i], true
}

// Select finds the glyph of the given shape whose every arm matches e.
// Corner type only constrains corner shapes.
func (r *Registry) Select(shape Shape, corner CornerType, e Edge) (BoxCharacter, bool) {
	var sides [sideCount]*Edge
	for _, s := range shape.Sides() {
		sides[s] = &e
	}
	return r.SelectSides(corner, sides[Left], sides[Right], sides[Up], sides[Down])
}

// SelectSides finds the glyph defining exactly the non-nil sides, each with an
// exactly matching edge. It reports false when no glyph qualifies.
func (r *Registry) SelectSides(corner CornerType, left, right, up, down *Edge) (BoxCharacter, bool) {
	shape := shapeOf(left != nil, right != nil, up != nil, down != nil)
	if shape == ShapeNone {
		return BoxCharacter{}, false
	}
	want := [sideCount]*Edge{Left: left, Right: right, Up: up, Down: down}
	for _, i := range r.buckets[shape] {
		c := r.usable[i]
		if shape.IsCorner() && c.Corner != corner {
			continue
		}
		if sidesMatch(c, want) {
			return c, true
		}
	}
	return BoxCharacter{}, false
}

func sidesMatch(c BoxCharacter, want [sideCount]*Edge) bool {
	for s := Side(0); s < sideCount; s++ {
		have := c.Edge(s)
		if (have == nil) != (want[s] == nil) {
			return false
		}
		if have != nil && !have.Matches(*want[s]) {
			return false
		}
	}
	return true
}
