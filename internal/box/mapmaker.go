package box

// MapMaker turns border requests into a box map using a shared Registry.
type MapMaker struct {
	registry *Registry
}

// NewMapMaker returns a MapMaker backed by reg.
func NewMapMaker(reg *Registry) *MapMaker {
	return &MapMaker{registry: reg}
}

// Build returns a width x height map with every region stamped in order.
// Later regions overwrite earlier ones cell by cell.
func (mm *MapMaker) Build(width, height int, regions ...BoxRegion) *BoxMap {
	m := NewBoxMap(width, height)
	mm.Stamp(m, regions...)
	return m
}

// Stamp writes regions into an existing map.
func (mm *MapMaker) Stamp(m *BoxMap, regions ...BoxRegion) {
	for _, r := range regions {
		if !visible(r, m.width, m.height) {
			continue
		}
		mm.stampRegion(m, r)
	}
}

// visible reports whether the region's extent touches the surface on both
// axes. The border itself may still fall entirely off-grid when the region
// encloses the surface; the per-cell checks in Set take care of that.
func visible(r BoxRegion, width, height int) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	horizontal := r.X < width && r.X+r.Width > 0
	vertical := r.Y < height && r.Y+r.Height > 0
	return horizontal && vertical
}

func (mm *MapMaker) stampRegion(m *BoxMap, r BoxRegion) {
	run := r.Edge()
	corner := run.WithoutDash()
	left, right := r.X, r.X+r.Width-1
	top, bottom := r.Y, r.Y+r.Height-1

	tl := mm.request(r, nil, &corner, nil, &corner)
	m.Set(left, top, tl)
	if r.Height > 1 {
		bl := mm.request(r, nil, &corner, &corner, nil)
		m.Set(left, bottom, bl)
	}

	horizontal := mm.request(r, &run, &run, nil, nil)
	for x := left + 1; x < right; x++ {
		m.Set(x, top, horizontal)
		if r.Height > 1 {
			m.Set(x, bottom, horizontal)
		}
	}

	if r.Width > 1 {
		tr := mm.request(r, &corner, nil, nil, &corner)
		m.Set(right, top, tr)
		if r.Height > 1 {
			br := mm.request(r, &corner, nil, &corner, nil)
			m.Set(right, bottom, br)
		}
	}

	vertical := mm.request(r, nil, nil, &run, &run)
	for y := top + 1; y < bottom; y++ {
		m.Set(left, y, vertical)
		if r.Width > 1 {
			m.Set(right, y, vertical)
		}
	}
}

func (mm *MapMaker) request(r BoxRegion, left, right, up, down *Edge) BoxCharRequest {
	q := BoxCharRequest{Left: left, Right: right, Up: up, Down: down, Format: r.Format}
	if c, ok := mm.registry.SelectSides(r.Corner, left, right, up, down); ok {
		q.Char = &c
	}
	return q
}
