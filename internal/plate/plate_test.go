package plate

import (
	"testing"

	"github.com/five82/layerterm/internal/style"
)

func rowString(p *Plate, y int) string {
	w, _ := p.Size()
	out := make([]rune, w)
	for x := 0; x < w; x++ {
		r, _ := p.Cell(x, y)
		switch r {
		case Unset:
			r = '.'
		case Continuation:
			r = '_'
		}
		out[x] = r
	}
	return string(out)
}

func TestNew_Transparent(t *testing.T) {
	p := New(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if !p.Transparent(x, y) {
				t.Fatalf("cell (%d,%d) not transparent", x, y)
			}
		}
	}
}

func TestWriteText_LinearNoWrapCheck(t *testing.T) {
	p := New(4, 2)
	bold := style.Format{Bold: true}
	p.WriteText(2, 0, "abcd", bold)

	if got := rowString(p, 0); got != "..ab" {
		t.Fatalf("row 0 = %q, want %q", got, "..ab")
	}
	if got := rowString(p, 1); got != "cd.." {
		t.Fatalf("row 1 = %q, want %q", got, "cd..")
	}
	if _, f := p.Cell(1, 1); f != bold {
		t.Fatalf("format = %+v, want %+v", f, bold)
	}
}

func TestWriteText_DropsPastArray(t *testing.T) {
	p := New(3, 1)
	p.WriteText(1, 0, "xyzzy", style.Format{})
	p.WriteText(-2, 0, "pq", style.Format{})
	if got := rowString(p, 0); got != ".xy" {
		t.Fatalf("row = %q, want %q", got, ".xy")
	}
}

func TestWriteLabel_TruncatesAndClips(t *testing.T) {
	p := New(8, 1)
	n := p.WriteLabel(1, 0, "overflowing", 5, style.Format{})
	if n != 5 {
		t.Fatalf("WriteLabel wrote %d cells, want 5", n)
	}
	if got := rowString(p, 0); got != ".over….." {
		t.Fatalf("row = %q, want %q", got, ".over…..")
	}

	q := New(4, 2)
	q.WriteLabel(2, 0, "abc", 10, style.Format{})
	if got := rowString(q, 1); got != "...." {
		t.Fatalf("label wrapped onto row 1: %q", got)
	}
}

func TestWriteText_WideRunes(t *testing.T) {
	p := New(6, 2)
	p.WriteText(1, 0, "日a本\u0301", style.Format{})
	if got := rowString(p, 0); got != ".日_a本_" {
		t.Fatalf("row 0 = %q, want %q", got, ".日_a本_")
	}
	if got := rowString(p, 1); got != "......" {
		t.Fatalf("row 1 = %q, want empty", got)
	}

	q := New(3, 2)
	q.WriteText(2, 0, "語x", style.Format{})
	if got := rowString(q, 0) + "|" + rowString(q, 1); got != "..語|_x." {
		t.Fatalf("rows = %q, want %q", got, "..語|_x.")
	}
}

func TestWriteLabel_WideRunes(t *testing.T) {
	p := New(6, 1)
	if n := p.WriteLabel(0, 0, "日本語です", 5, style.Format{}); n != 5 {
		t.Fatalf("WriteLabel wrote %d cells, want 5", n)
	}
	if got := rowString(p, 0); got != "日_本_…." {
		t.Fatalf("row = %q, want %q", got, "日_本_….")
	}

	q := New(5, 1)
	if n := q.WriteLabel(2, 0, "abc日", 10, style.Format{}); n != 3 {
		t.Fatalf("WriteLabel wrote %d cells, want 3", n)
	}
	if got := rowString(q, 0); got != "..abc" {
		t.Fatalf("row = %q, want %q", got, "..abc")
	}
}

func TestSetCellOutOfRange(t *testing.T) {
	p := New(2, 2)
	p.Set(2, 0, 'x', style.Format{})
	p.Set(0, -1, 'x', style.Format{})
	if r, _ := p.Cell(5, 5); r != Unset {
		t.Fatalf("Cell off plate = %q, want Unset", r)
	}
	for y := 0; y < 2; y++ {
		if got := rowString(p, y); got != ".." {
			t.Fatalf("row %d = %q, want empty", y, got)
		}
	}
}

func TestFillRectAndClear(t *testing.T) {
	p := New(4, 3)
	p.FillRect(-1, 1, 3, 5, '#', style.Format{})
	want := []string{"....", "##..", "##.."}
	for y, w := range want {
		if got := rowString(p, y); got != w {
			t.Fatalf("row %d = %q, want %q", y, got, w)
		}
	}
	p.Clear()
	if !p.Transparent(0, 1) {
		t.Fatalf("Clear left cell set")
	}
}
