package core

import "testing"

func TestRectGrow(t *testing.T) {
	r := NewRect(5, 5, 4, 2).Grow(1)
	if r != NewRect(4, 4, 6, 4) {
		t.Errorf("Grow(1) = %+v", r)
	}
	if r.Right() != 10 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 10/8", r.Right(), r.Bottom())
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Yellow ")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != ColorYellow {
		t.Errorf("ParseColor(Yellow) = %v", c)
	}
	if c.String() != "yellow" {
		t.Errorf("String() = %q", c.String())
	}

	if _, err := ParseColor("ultraviolet"); err == nil {
		t.Error("Expected error for unknown color")
	}
}
