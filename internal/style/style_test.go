package style

import "testing"

func TestWidths(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"┌─┐│╭╯", 6},
		{"日本語", 6},
		{"é", 1},
		{"a日b", 4},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Fatalf("TextWidth(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
	if got := RuneWidth('…'); got != 1 {
		t.Fatalf("RuneWidth(…) = %d, want 1", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("日本語です", 5, "…"); got != "日本…" {
		t.Fatalf("Truncate = %q, want %q", got, "日本…")
	}
	if got := Truncate("short", 10, "…"); got != "short" {
		t.Fatalf("Truncate = %q, want %q", got, "short")
	}
}

func TestFormatBuilders(t *testing.T) {
	f := Default.WithForeground("#F8F8F2").WithBackground("#282A36").WithBold(true).WithReverse(true)
	want := Format{Foreground: "#F8F8F2", Background: "#282A36", Bold: true, Reverse: true}
	if f != want {
		t.Fatalf("format = %+v, want %+v", f, want)
	}
	if Default != (Format{}) {
		t.Fatalf("Default = %+v, want zero format", Default)
	}
}
