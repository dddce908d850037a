package viz

import (
	"strings"
	"testing"
)

func TestCanvas_SetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	if w, h := c.Pixels(); w != 8 || h != 8 {
		t.Fatalf("Pixels = %d x %d", w, h)
	}

	c.SetPen("#ff0000")
	c.Set(3, 5)
	if !c.Lit(3, 5) {
		t.Fatal("pixel not set")
	}
	if got := c.Grid[1][1]; got != blank|0x10 {
		t.Errorf("cell = %U", got)
	}
	if got := c.Ink[1][1]; got != "#ff0000" {
		t.Errorf("ink = %q", got)
	}

	c.Unset(3, 5)
	if c.Lit(3, 5) || c.Grid[1][1] != blank || c.Ink[1][1] != "" {
		t.Error("Unset left the cell dirty")
	}

	// Out of range is ignored.
	c.Set(-1, 0)
	c.Set(8, 0)
	c.Set(0, 8)
	if strings.ContainsFunc(c.String(), func(r rune) bool { return r != blank && r != '\n' }) {
		t.Error("out of range pixel drawn")
	}
}

func TestCanvas_DrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 0, 0, 3, 0, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"vertical", 1, 1, 1, 3, [][2]int{{1, 1}, {1, 2}, {1, 3}}},
		{"diagonal", 0, 0, 2, 2, [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{"point", 2, 2, 2, 2, [][2]int{{2, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 2)
			c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1)
			for _, p := range tt.want {
				if !c.Lit(p[0], p[1]) {
					t.Errorf("pixel %v not set", p)
				}
			}
		})
	}
}

func TestCanvas_ClearAndRender(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetPen("#00ff00")
	c.Fill(2, 2, 1)
	if !c.Lit(1, 1) || !c.Lit(3, 3) {
		t.Error("Fill missed its corners")
	}

	out := c.Render()
	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("Render produced %d lines", lines)
	}
	if !strings.ContainsRune(out, c.Grid[0][0]) {
		t.Error("Render lost a cell")
	}

	c.Clear()
	want := strings.Repeat(strings.Repeat(string(rune(blank)), 3)+"\n", 2)
	if got := c.String(); got != want {
		t.Errorf("String after Clear = %q", got)
	}
	if c.Ink[0][0] != "" {
		t.Error("Clear kept ink")
	}
}
