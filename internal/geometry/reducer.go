package geometry

// Reducer shrinks rectangles to a maximum size while keeping the key point
// inside. PreferCol and PreferRow name the origin the caller would like to
// keep, normally a viewport's current scroll origin.
type Reducer struct {
	PreferCol int
	PreferRow int
}

// Reduce returns r limited to width x height. Axes that already fit are left
// untouched. Non-positive limits leave that axis untouched as well.
func (rd Reducer) Reduce(r Rectangle, width, height int) Rectangle {
	if r.IsDegenerate() {
		return r
	}
	r = r.ClampKey()
	r.Left, r.Width = reduceAxis(r.Left, r.Width, r.KeyCol, width, rd.PreferCol)
	r.Top, r.Height = reduceAxis(r.Top, r.Height, r.KeyRow, height, rd.PreferRow)
	return r
}

// reduceAxis picks the window of length limit inside [start, start+length)
// that contains key and lies closest to prefer.
func reduceAxis(start, length, key, limit, prefer int) (int, int) {
	if limit <= 0 || length <= limit {
		return start, length
	}
	lo := max(start, key-limit+1)
	hi := min(start+length-limit, key)
	return clamp(prefer, lo, hi), limit
}
