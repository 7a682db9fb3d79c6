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
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawText(0, 0, "abc")
	s.Fill(Red)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			cell := s.GetCell(x, y)
			if cell.Bg != Red || cell.Rune != ' ' {
				t.Errorf("After Fill, cell (%d, %d) = %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), Green)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Bg != Green {
				t.Errorf("FillRect: expected green at (%d, %d)", x, y)
			}
		}
	}
	if s.GetCell(1, 1).Bg == Green || s.GetCell(5, 5).Bg == Green {
		t.Error("FillRect should not affect outside area")
	}

	// Clipped at the edges without panicking
	s.FillRect(NewRect(-3, 8, 5, 5), Red)
	if s.GetCell(0, 9).Bg != Red {
		t.Error("FillRect should paint the visible part of a clipped rect")
	}
}

func TestScreenDrawString(t *testing.T) {
	s := NewScreen(20, 5)
	s.FillRect(NewRect(0, 0, 20, 5), Green)
	s.DrawString(2, 1, "Hello", Black)

	for i, ch := range "Hello" {
		cell := s.GetCell(2+i, 1)
		if cell.Rune != ch || cell.Fg != Black || cell.Bg != Green {
			t.Errorf("DrawString: cell %d = %+v", i, cell)
		}
	}

	// Text should be clipped at boundaries
	s.DrawString(18, 0, "Hello", Black)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	row0 := s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	row0 = s.Row(0)
	if !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenMeasureString(t *testing.T) {
	s := NewScreen(10, 2)
	tests := []struct {
		text string
		w    int
	}{
		{"", 0},
		{"X", 1},
		{"héllo", 5},
	}
	for _, tt := range tests {
		w, h := s.MeasureString(tt.text)
		if w != tt.w || h != 1 {
			t.Errorf("MeasureString(%q) = %d, %d, expected %d, 1", tt.text, w, h, tt.w)
		}
	}
}
