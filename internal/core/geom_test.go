package core

import "testing"

func TestPositionAdd(t *testing.T) {
	p := Pos(10, 20)
	if got := p.Add(Vel(3, -4)); got != Pos(13, 16) {
		t.Errorf("Add() = %+v, expected (13, 16)", got)
	}
}

func TestVelocityTimes(t *testing.T) {
	tests := []struct {
		name     string
		v, by    Velocity
		expected Velocity
	}{
		{"reflect x", Vel(3, 4), Vel(-1, 1), Vel(-3, 4)},
		{"reflect y", Vel(3, 4), Vel(1, -1), Vel(3, -4)},
		{"reflect both", Vel(3, 4), Vel(-1, -1), Vel(-3, -4)},
		{"identity", Vel(-2, 5), Vel(1, 1), Vel(-2, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Times(tc.by); got != tc.expected {
				t.Errorf("Times() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestVelocityClampX(t *testing.T) {
	tests := []struct {
		in       Velocity
		expected Velocity
	}{
		{Vel(9, 4), Vel(6, 4)},
		{Vel(-9, -4), Vel(-6, -4)},
		{Vel(6, 4), Vel(6, 4)},
		{Vel(-2, 0), Vel(-2, 0)},
	}

	for _, tc := range tests {
		if got := tc.in.ClampX(6); got != tc.expected {
			t.Errorf("ClampX(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
		}
	}
}

func TestRectClosest(t *testing.T) {
	r := NewRect(32, 15, 32, 15)

	tests := []struct {
		name     string
		p        Position
		expected Position
	}{
		{"inside", Pos(40, 20), Pos(40, 20)},
		{"left of", Pos(20, 20), Pos(32, 20)},
		{"below right corner", Pos(80, 40), Pos(64, 30)},
		{"above", Pos(50, 0), Pos(50, 15)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Closest(tc.p); got != tc.expected {
				t.Errorf("Closest(%+v) = %+v, expected %+v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if cx, cy := r.Center(); cx != 20 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (20, 17)", cx, cy)
	}
}

func TestClampSignAbs(t *testing.T) {
	if Clamp(15, 0, 10) != 10 || Clamp(-5, 0, 10) != 0 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should restrict to range")
	}
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign returned wrong value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 {
		t.Error("Abs returned wrong value")
	}
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned wrong value")
	}
}
