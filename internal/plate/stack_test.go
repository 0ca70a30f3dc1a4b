package plate

import (
	"testing"

	"github.com/five82/layerterm/internal/box"
	"github.com/five82/layerterm/internal/style"
)

func TestTakeCharacterFromStack_UntouchedIsSpace(t *testing.T) {
	s := NewStack(New(3, 3), New(3, 3))
	if got := s.TakeCharacterFromStack(1, 1); got != ' ' {
		t.Fatalf("TakeCharacterFromStack = %q, want space", got)
	}
	if got := NewStack().TakeCharacterFromStack(0, 0); got != ' ' {
		t.Fatalf("empty stack = %q, want space", got)
	}
}

func TestTakeCharacterFromStack_OnlyOnePlateSet(t *testing.T) {
	const layers = 4
	for k := 0; k < layers; k++ {
		plates := make([]*Plate, layers)
		for i := range plates {
			plates[i] = New(3, 3)
			// Other cells are busy on every plate.
			plates[i].Set(0, 0, rune('a'+i), style.Format{})
		}
		plates[k].Set(2, 1, 'K', style.Format{})

		s := NewStack(plates...)
		if got := s.TakeCharacterFromStack(2, 1); got != 'K' {
			t.Fatalf("k=%d: TakeCharacterFromStack = %q, want 'K'", k, got)
		}
	}
}

func TestTakeCellFromStack_TopmostWins(t *testing.T) {
	bottom, top := New(2, 1), New(2, 1)
	bottom.Fill('b', style.Format{Foreground: "#111111"})
	top.Set(1, 0, 't', style.Format{Foreground: "#222222"})

	s := NewStack(bottom, nil, top)
	if r, f := s.TakeCellFromStack(0, 0); r != 'b' || f.Foreground != "#111111" {
		t.Fatalf("cell 0 = %q %+v, want bottom", r, f)
	}
	if r, f := s.TakeCellFromStack(1, 0); r != 't' || f.Foreground != "#222222" {
		t.Fatalf("cell 1 = %q %+v, want top", r, f)
	}
	if len(s.Plates()) != 2 {
		t.Fatalf("Plates = %d, want nil skipped", len(s.Plates()))
	}
}

func TestStackSize_MaxOfPlates(t *testing.T) {
	s := NewStack(New(5, 2), New(3, 7))
	if w, h := s.Size(); w != 5 || h != 7 {
		t.Fatalf("Size = %dx%d, want 5x7", w, h)
	}
}

func TestBoxRenderer_PaintsRegion(t *testing.T) {
	mm := box.NewMapMaker(box.NewRegistry())
	f := style.Format{Foreground: "#BD93F9"}
	region := box.NewBoxRegion(0, 0, 5, 3)
	region.Format = f

	p := New(10, 10)
	NewBoxRenderer().Render(mm.Build(10, 10, region), p)

	want := []string{"┌───┐.....", "│...│.....", "└───┘.....", ".........."}
	for y, w := range want {
		if got := rowString(p, y); got != w {
			t.Fatalf("row %d = %q, want %q", y, got, w)
		}
	}
	if _, got := p.Cell(4, 2); got != f {
		t.Fatalf("format = %+v, want %+v", got, f)
	}
}

func TestBoxRenderer_LeavesEmptyCells(t *testing.T) {
	mm := box.NewMapMaker(box.NewRegistry())
	p := New(4, 3)
	p.Set(0, 0, 'x', style.Format{})
	heavyArc := box.BoxRegion{Width: 4, Height: 3, Weight: box.Heavy, Corner: box.CornerArc}
	NewBoxRenderer().Render(mm.Build(4, 3, heavyArc), p)

	if r, _ := p.Cell(0, 0); r != 'x' {
		t.Fatalf("corner without glyph overwrote plate: %q", r)
	}
	if r, _ := p.Cell(1, 0); r != '━' {
		t.Fatalf("top run = %q, want '━'", r)
	}
}
