package core

import "testing"

func TestWrapAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		limit    int
		expected int
	}{
		{"inside range", 3, 2, 10, 5},
		{"wrap past right edge", 9, 1, 10, 0},
		{"negative wraps to right edge", 0, -1, 10, 9},
		{"large negative", 2, -23, 10, 9},
		{"zero limit", 5, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAdd(tt.a, tt.b, tt.limit); got != tt.expected {
				t.Errorf("WrapAdd(%d, %d, %d) = %d, expected %d", tt.a, tt.b, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestWrapIncDec(t *testing.T) {
	const width = 80

	if got := WrapDec(0, width); got != width-1 {
		t.Errorf("WrapDec(0) = %d, expected %d", got, width-1)
	}
	if got := WrapInc(width-1, width); got != 0 {
		t.Errorf("WrapInc(%d) = %d, expected 0", width-1, got)
	}
	if got := WrapDec(40, width); got != 39 {
		t.Errorf("WrapDec(40) = %d, expected 39", got)
	}
	if got := WrapInc(40, width); got != 41 {
		t.Errorf("WrapInc(40) = %d, expected 41", got)
	}

	// A full lap in either direction returns to the start.
	x := 17
	for i := 0; i < width; i++ {
		x = WrapInc(x, width)
	}
	if x != 17 {
		t.Errorf("after %d WrapInc, x = %d, expected 17", width, x)
	}
	for i := 0; i < width; i++ {
		x = WrapDec(x, width)
	}
	if x != 17 {
		t.Errorf("after %d WrapDec, x = %d, expected 17", width, x)
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		a, b     int
		expected int
	}{
		{5, 3, 2},
		{3, 5, 2},
		{0, 0, 0},
		{0, 79, 79},
	}

	for _, tt := range tests {
		if got := AbsDiff(tt.a, tt.b); got != tt.expected {
			t.Errorf("AbsDiff(%d, %d) = %d, expected %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max int
		expected      int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.min, tt.max)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, result, tt.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
	if Max(5, 3) != 5 {
		t.Error("Max(5, 3) should be 5")
	}
}
