package box

import "fmt"

// LineWeight is the stroke thickness of a box line.
type LineWeight int

const (
	Light LineWeight = iota
	Heavy
)

// LineCount is the number of parallel strokes in a box line.
type LineCount int

const (
	Single LineCount = iota
	Double
)

// DashType is the dash pattern of a box line.
type DashType int

const (
	NoDash DashType = iota
	DoubleDash
	TripleDash
	QuadrupleDash
)

// CornerType distinguishes square corners from rounded ones.
type CornerType int

const (
	CornerBox CornerType = iota
	CornerArc
)

// Edge describes the line style on one side of a box glyph.
type Edge struct {
	Weight LineWeight
	Count  LineCount
	Dash   DashType
}

// Matches reports structural equality. There is no partial matching.
func (e Edge) Matches(other Edge) bool {
	return e == other
}

// WithoutDash returns the edge with its dash pattern removed.
func (e Edge) WithoutDash() Edge {
	e.Dash = NoDash
	return e
}

func (e Edge) String() string {
	return fmt.Sprintf("%s/%s/%s", e.Weight, e.Count, e.Dash)
}

func (w LineWeight) String() string {
	switch w {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	default:
		return fmt.Sprintf("LineWeight(%d)", int(w))
	}
}

func (c LineCount) String() string {
	switch c {
	case Single:
		return "single"
	case Double:
		return "double"
	default:
		return fmt.Sprintf("LineCount(%d)", int(c))
	}
}

func (d DashType) String() string {
	switch d {
	case NoDash:
		return "none"
	case DoubleDash:
		return "double"
	case TripleDash:
		return "triple"
	case QuadrupleDash:
		return "quadruple"
	default:
		return fmt.Sprintf("DashType(%d)", int(d))
	}
}

func (c CornerType) String() string {
	switch c {
	case CornerBox:
		return "box"
	case CornerArc:
		return "arc"
	default:
		return fmt.Sprintf("CornerType(%d)", int(c))
	}
}

// ParseLineWeight accepts the String form of a LineWeight.
func ParseLineWeight(s string) (LineWeight, error) {
	switch s {
	case "", "light":
		return Light, nil
	case "heavy":
		return Heavy, nil
	}
	return Light, fmt.Errorf("unknown line weight %q", s)
}

// ParseLineCount accepts the String form of a LineCount.
func ParseLineCount(s string) (LineCount, error) {
	switch s {
	case "", "single":
		return Single, nil
	case "double":
		return Double, nil
	}
	return Single, fmt.Errorf("unknown line count %q", s)
}

// ParseDashType accepts the String form of a DashType.
func ParseDashType(s string) (DashType, error) {
	switch s {
	case "", "none":
		return NoDash, nil
	case "double":
		return DoubleDash, nil
	case "triple":
		return TripleDash, nil
	case "quadruple":
		return QuadrupleDash, nil
	}
	return NoDash, fmt.Errorf("unknown dash type %q", s)
}

// ParseCornerType accepts the String form of a CornerType.
func ParseCornerType(s string) (CornerType, error) {
	switch s {
	case "", "box":
		return CornerBox, nil
	case "arc":
		return CornerArc, nil
	}
	return CornerBox, fmt.Errorf("unknown corner type %q", s)
}
