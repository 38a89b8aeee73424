package guidance

import (
	"fmt"
)

//*******************************************
// simplification
//*******************************************

// Simplify merges runs of consecutive straight-walking instructions into
// one, summing their distances. The pass is idempotent, a second run
// finds no mergeable pairs and returns its input unchanged.
func Simplify(instructions []Instruction) []Instruction {
	result := make([]Instruction, 0, len(instructions))
	for _, instr := range instructions {
		if len(result) > 0 && is_straight(result[len(result)-1].Action) && is_straight(instr.Action) {
			merged := result[len(result)-1]
			merged.Distance += instr.Distance
			merged.Description = "Continue straight"
			merged.Spoken = fmt.Sprintf("Continue straight for %s.", DistancePhrase(merged.Distance))
			result[len(result)-1] = merged
			continue
		}
		result = append(result, instr)
	}
	return Renumber(result)
}

func is_straight(action Action) bool {
	return action == GO_STRAIGHT || action == WALK_FORWARD
}

// Renumber rewrites step numbers to be contiguous starting at 1.
func Renumber(instructions []Instruction) []Instruction {
	for i := range instructions {
		instructions[i].Step = i + 1
	}
	return instructions
}
