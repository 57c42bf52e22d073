package snake

import (
	"errors"
	"testing"
)

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d, expected Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirNone, DirNone},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.expected {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestPositionMove(t *testing.T) {
	p := Position{X: 5, Y: 5}

	tests := []struct {
		d        Direction
		expected Position
	}{
		{DirUp, Position{X: 5, Y: 4}},
		{DirDown, Position{X: 5, Y: 6}},
		{DirLeft, Position{X: 4, Y: 5}},
		{DirRight, Position{X: 6, Y: 5}},
		{DirNone, Position{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		if got := p.Move(tc.d); got != tc.expected {
			t.Errorf("Move(%v) = %v, expected %v", tc.d, got, tc.expected)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"up", DirUp, false},
		{"U", DirUp, false},
		{"down", DirDown, false},
		{"d", DirDown, false},
		{" Left ", DirLeft, false},
		{"r", DirRight, false},
		{".", DirNone, false},
		{"none", DirNone, false},
		{"x", DirNone, true},
		{"north", DirNone, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDirection(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDirection) {
					t.Errorf("ParseDirection(%q) error = %v, expected ErrInvalidDirection", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) failed: %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseDirection(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	for _, d := range []Direction{DirNone, Direction(-1), Direction(9)} {
		if d.Valid() {
			t.Errorf("Direction(%d) should not be valid", int(d))
		}
	}
}
