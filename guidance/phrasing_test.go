package guidance

import (
	"testing"
)

func TestDistancePhrase(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{1.5, "a couple of steps"},
		{3, "a few steps"},
		{6, "about 8 steps"},
		{7.5, "about 10 steps"},
		{12, "about 15 steps"},
		{20, "about 20 meters"},
		{48, "about 50 meters"},
	}
	for _, c := range cases {
		if got := DistancePhrase(c.meters); got != c.want {
			t.Errorf("DistancePhrase(%v) = %q; want %q", c.meters, got, c.want)
		}
	}
}

func TestClassifyTurn(t *testing.T) {
	cases := []struct {
		angle float64
		want  Action
	}{
		{0, GO_STRAIGHT},
		{29, GO_STRAIGHT},
		{-29, GO_STRAIGHT},
		{45, SLIGHT_RIGHT},
		{-45, SLIGHT_LEFT},
		{90, TURN_RIGHT},
		{-90, TURN_LEFT},
		{150, TURN_AROUND},
		{-170, TURN_AROUND},
		{180, TURN_AROUND},
	}
	for _, c := range cases {
		if got := ClassifyTurn(c.angle); got != c.want {
			t.Errorf("ClassifyTurn(%v) = %v; want %v", c.angle, got, c.want)
		}
	}
}

func TestSimplifyMergesStraights(t *testing.T) {
	instructions := []Instruction{
		{Step: 1, Action: START, Spoken: "Starting navigation."},
		{Step: 2, Action: GO_STRAIGHT, Distance: 10, Spoken: "Walk about 15 steps, then continue straight."},
		{Step: 3, Action: GO_STRAIGHT, Distance: 12, Spoken: "Walk about 15 steps, then continue straight."},
		{Step: 4, Action: ARRIVE, Distance: 5, Spoken: "You have arrived."},
	}

	simplified := Simplify(instructions)
	if len(simplified) != 3 {
		t.Fatalf("simplified = %v; want 3", len(simplified))
	}
	merged := simplified[1]
	if merged.Action != GO_STRAIGHT || merged.Distance != 22 {
		t.Errorf("merged = %v distance %v; want go_straight with 22", merged.Action, merged.Distance)
	}
	if merged.Spoken != "Continue straight for about 20 meters." {
		t.Errorf("merged spoken = %q", merged.Spoken)
	}
	for i, instr := range simplified {
		if instr.Step != i+1 {
			t.Errorf("step[%d] = %v; want %v", i, instr.Step, i+1)
		}
	}

	again := Simplify(simplified)
	if len(again) != len(simplified) {
		t.Errorf("second pass changed length: %v vs %v", len(again), len(simplified))
	}
}
