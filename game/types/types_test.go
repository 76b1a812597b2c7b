package types

import "testing"

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		UP:    DOWN,
		DOWN:  UP,
		LEFT:  RIGHT,
		RIGHT: LEFT,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if sum := d.ToPoint().Add(want.ToPoint()); sum != (Point{}) {
			t.Errorf("%v and its opposite do not cancel out: %+v", d, sum)
		}
	}
	if NONE.Opposite() != NONE {
		t.Error("NONE should have no opposite")
	}
}

func TestDirectionToPoint(t *testing.T) {
	origin := Point{X: 5, Y: 5}
	cases := []struct {
		dir  Direction
		want Point
	}{
		{UP, Point{5, 4}},
		{DOWN, Point{5, 6}},
		{LEFT, Point{4, 5}},
		{RIGHT, Point{6, 5}},
	}
	for _, c := range cases {
		got := origin.Add(c.dir.ToPoint())
		if got != c.want {
			t.Errorf("moving %v from %+v: got %+v, want %+v", c.dir, origin, got, c.want)
		}
		if origin.Manhattan(got) != 1 {
			t.Errorf("moving %v should be one cell away", c.dir)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{UP, RIGHT, DOWN, LEFT} {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("expected unknown name to be rejected")
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 30, Height: 20}
	inside := []Point{{0, 0}, {29, 19}, {5, 5}}
	outside := []Point{{-1, 0}, {0, -1}, {30, 0}, {0, 20}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("expected %+v inside %+v", p, g)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("expected %+v outside %+v", p, g)
		}
	}
}
