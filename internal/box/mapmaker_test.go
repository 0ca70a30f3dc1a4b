package box

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapRows renders a map as one string per row, '.' for empty cells.
func mapRows(m *BoxMap) []string {
	w, h := m.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var b strings.Builder
		for x := 0; x < w; x++ {
			if r := m.At(x, y).Rune(); r != 0 {
				b.WriteRune(r)
			} else {
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func TestBuild_SingleLightBox(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	m := mm.Build(10, 10, NewBoxRegion(0, 0, 5, 3))

	got := mapRows(m)[:4]
	want := []string{
		"┌───┐.....",
		"│...│.....",
		"└───┘.....",
		"..........",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
	if r := m.At(0, 0).Rune(); r != 0x250C {
		t.Fatalf("top-left = %U, want U+250C", r)
	}
}

func TestBuild_StylesAndCorners(t *testing.T) {
	mm := NewMapMaker(NewRegistry())

	tests := []struct {
		name   string
		region BoxRegion
		want   []string
	}{
		{
			name:   "double",
			region: BoxRegion{Width: 4, Height: 3, Count: Double},
			want:   []string{"╔══╗", "║..║", "╚══╝"},
		},
		{
			name:   "arc",
			region: BoxRegion{Width: 4, Height: 3, Corner: CornerArc},
			want:   []string{"╭──╮", "│..│", "╰──╯"},
		},
		{
			name:   "heavy dashed keeps solid corners",
			region: BoxRegion{Width: 4, Height: 3, Weight: Heavy, Dash: TripleDash},
			want:   []string{"┏┅┅┓", "┇..┇", "┗┅┅┛"},
		},
		{
			name:   "heavy arc has no corners",
			region: BoxRegion{Width: 4, Height: 3, Weight: Heavy, Corner: CornerArc},
			want:   []string{".━━.", "┃..┃", ".━━."},
		},
	}
	for _, tt := range tests {
		got := mapRows(mm.Build(4, 3, tt.region))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("%s: map mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestBuild_InvisibleRegionSkipped(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	m := mm.Build(10, 10, NewBoxRegion(-3, 0, 2, 4))

	m.Each(func(x, y int, q BoxCharRequest) {
		if !q.Empty() {
			t.Fatalf("cell (%d,%d) = %q, want empty", x, y, q.Rune())
		}
	})
}

func TestBuild_DegenerateRegionSkipped(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	m := mm.Build(5, 5, NewBoxRegion(1, 1, 0, 3), NewBoxRegion(1, 1, 3, -1))
	for _, row := range mapRows(m) {
		if row != "....." {
			t.Fatalf("row = %q, want empty", row)
		}
	}
}

func TestBuild_ClipsPartiallyVisibleRegion(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	got := mapRows(mm.Build(4, 3, NewBoxRegion(-2, 1, 5, 4)))
	want := []string{
		"....",
		"──┐.",
		"..│.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NoRowWrapOnLeftEdge(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	// The left border sits at x=-1; none of it may wrap onto the previous row.
	got := mapRows(mm.Build(4, 3, NewBoxRegion(-1, 0, 3, 3)))
	want := []string{"─┐..", ".│..", "─┘.."}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_DisjointRegionsOrderIndependent(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	a := NewBoxRegion(0, 0, 4, 3)
	b := BoxRegion{X: 5, Y: 4, Width: 3, Height: 4, Weight: Heavy}

	ab := mm.Build(10, 10, a, b)
	ba := mm.Build(10, 10, b, a)
	if diff := cmp.Diff(ab, ba, cmp.AllowUnexported(BoxMap{})); diff != "" {
		t.Fatalf("order changed map (-ab +ba):\n%s", diff)
	}
}

func TestBuild_OverlapLastWins(t *testing.T) {
	mm := NewMapMaker(NewRegistry())
	a := NewBoxRegion(0, 0, 6, 4)
	b := BoxRegion{X: 3, Y: 2, Width: 5, Height: 4, Count: Double}

	both := mm.Build(10, 10, a, b)
	onlyB := mm.Build(10, 10, b)
	onlyB.Each(func(x, y int, q BoxCharRequest) {
		if q.Empty() {
			return
		}
		if diff := cmp.Diff(q, both.At(x, y)); diff != "" {
			t.Fatalf("cell (%d,%d) differs from B alone:\n%s", x, y, diff)
		}
	})
	if got := both.At(0, 0).Rune(); got != '┌' {
		t.Fatalf("A's corner outside overlap = %q, want '┌'", got)
	}
}

func TestBoxMap_OutOfRange(t *testing.T) {
	m := NewBoxMap(3, 2)
	m.Set(3, 0, BoxCharRequest{Char: &BoxCharacter{Source: 'x'}})
	m.Set(-1, 1, BoxCharRequest{Char: &BoxCharacter{Source: 'x'}})
	m.Set(0, 2, BoxCharRequest{Char: &BoxCharacter{Source: 'x'}})
	m.Each(func(x, y int, q BoxCharRequest) {
		if !q.Empty() {
			t.Fatalf("cell (%d,%d) written by out-of-range Set", x, y)
		}
	})
	if !m.At(10, 10).Empty() {
		t.Fatalf("At off-grid returned a glyph")
	}
}
