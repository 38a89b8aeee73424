package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Coord{0, 0}, Coord{3, 4})
	if d != 5 {
		t.Errorf("Distance = %v; want 5", d)
	}
}

func TestBearingConvention(t *testing.T) {
	// 0 deg is the positive y-axis, clockwise
	cases := []struct {
		from, to Coord
		want     float64
	}{
		{Coord{0, 0}, Coord{0, 10}, 0},
		{Coord{0, 0}, Coord{10, 0}, 90},
		{Coord{0, 0}, Coord{0, -10}, 180},
		{Coord{0, 0}, Coord{-10, 0}, 270},
		{Coord{0, 0}, Coord{10, 10}, 45},
	}
	for _, c := range cases {
		got := Bearing(c.from, c.to)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Bearing(%v, %v) = %v; want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestTurnAngleNormalization(t *testing.T) {
	if got := TurnAngle(0, 90); got != 90 {
		t.Errorf("TurnAngle(0, 90) = %v; want 90", got)
	}
	if got := TurnAngle(0, 270); got != -90 {
		t.Errorf("TurnAngle(0, 270) = %v; want -90", got)
	}
	if got := TurnAngle(0, 180); got != 180 {
		t.Errorf("TurnAngle(0, 180) = %v; want 180", got)
	}
	if got := TurnAngle(350, 10); got != 20 {
		t.Errorf("TurnAngle(350, 10) = %v; want 20", got)
	}
	if got := TurnAngle(10, 350); got != -20 {
		t.Errorf("TurnAngle(10, 350) = %v; want -20", got)
	}
}

func TestCompassLabel(t *testing.T) {
	if got := CompassLabel(0); got != "north" {
		t.Errorf("CompassLabel(0) = %v; want north", got)
	}
	if got := CompassLabel(90); got != "east" {
		t.Errorf("CompassLabel(90) = %v; want east", got)
	}
	if got := CompassLabel(210); got != "south-west" {
		t.Errorf("CompassLabel(210) = %v; want south-west", got)
	}
	if got := CompassLabel(350); got != "north" {
		t.Errorf("CompassLabel(350) = %v; want north", got)
	}
}
