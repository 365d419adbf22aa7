package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
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

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '█', ColorCyan)

	cell := s.GetCell(1, 1)
	if cell.Rune != '█' || cell.Color != ColorCyan {
		t.Errorf("GetCell(1, 1) = %+v, expected cyan block", cell)
	}

	s.Clear()
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "██[]")

	if got := s.Row(0); got != "██[]      " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4), ColorGray)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("DrawBox should apply the color")
	}
	if s.Get(2, 2) != ' ' {
		t.Error("DrawBox should not fill the interior")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(1, 1, 2, 2), '#')

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' {
		t.Error("FillRect should fill the rectangle")
	}
	if s.Get(3, 3) != ' ' || s.Get(0, 0) != ' ' {
		t.Error("FillRect should not touch cells outside the rectangle")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("Content clipped by a shrink should not come back")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	expected := "abc\nde "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}

	if strings.Count(s.String(), "\n") != 1 {
		t.Error("String() should join rows with newlines")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 1)
	if s.Row(5) != "    " {
		t.Errorf("Row out of bounds = %q, expected blanks", s.Row(5))
	}
}
