package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads are blank
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d, %d) out of bounds should be a space", p[0], p[1])
		}
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(10, 3)

	s.SetWithColor(1, 1, '#', ColorRed)
	if c := s.GetCell(1, 1); c.Rune != '#' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 1) = %+v, expected red '#'", c)
	}

	s.DrawTextWithColor(2, 0, "ab", ColorCyan)
	if s.GetCell(2, 0).Color != ColorCyan || s.GetCell(3, 0).Color != ColorCyan {
		t.Error("DrawTextWithColor should color every rune")
	}

	// Plain Set resets the color
	s.Set(1, 1, '#')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	s.Clear()
	if s.GetCell(2, 0) != blankCell {
		t.Error("Clear should reset colors too")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(4, 3)
	s.Fill('#')

	if got := s.String(); got != "####\n####\n####" {
		t.Errorf("String() after Fill = %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1), "  Hello") {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}

	// Multi-byte runes advance one column each
	s.DrawText(0, 2, "│x")
	if s.Get(1, 2) != 'x' {
		t.Errorf("Get(1, 2) = %q, expected 'x'", s.Get(1, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at x=%d: row = %q", x, s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRectWithColor(NewRect(2, 2, 3, 3), '#', ColorBlue)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			c := s.GetCell(x, y)
			if inside && (c.Rune != '#' || c.Color != ColorBlue) {
				t.Errorf("(%d, %d) = %+v, expected blue '#'", x, y, c)
			}
			if !inside && c != blankCell {
				t.Errorf("(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	expected := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawHLine(1, 0, 4, '-')
	s.DrawVLine(0, 1, 3, '|')

	if s.Row(0) != " ---- " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	for y := 1; y < 4; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("Get(0, %d) = %q, expected '|'", y, s.Get(0, y))
		}
	}
	if s.Get(0, 4) != ' ' {
		t.Error("vertical line drawn past its length")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive shrinking, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive growing, row 0 = %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("row 5 was cut off by the shrink and should be blank, got %q", s.Row(5))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected 4 spaces", got)
	}
}
