package guidance

import (
	"github.com/google/uuid"
	"github.com/roomroute/indoornav/building"
)

//*******************************************
// hazard annotation
//*******************************************

// Annotate inserts a caution instruction for every alert intersecting the
// path, immediately before the instruction corresponding to the affected
// node's position. Multiple alerts on the same node each insert their own
// caution. Step numbers are rewritten to 1..N afterwards.
func Annotate(instructions []Instruction, m *building.MapModel, ids []string) []Instruction {
	position := make(map[string]int, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		position[ids[i]] = i
	}

	result := make([]Instruction, len(instructions))
	copy(result, instructions)

	for _, alert := range m.Alerts() {
		for p, id := range ids {
			if !alert_affects(alert, id) {
				continue
			}
			at := insertion_index(result, position, p)
			caution := caution_instruction(alert, id)
			result = append(result, Instruction{})
			copy(result[at+1:], result[at:])
			result[at] = caution
		}
	}
	return Renumber(result)
}

func alert_affects(alert building.Alert, id string) bool {
	for _, node_id := range alert.Nodes {
		if node_id == id {
			return true
		}
	}
	return false
}

// insertion_index finds the first instruction anchored at or past the
// given path position.
func insertion_index(instructions []Instruction, position map[string]int, p int) int {
	for i, instr := range instructions {
		if instr.Action == CAUTION {
			continue
		}
		if pos, ok := position[instr.NodeId]; ok && pos >= p {
			return i
		}
	}
	return len(instructions)
}

func caution_instruction(alert building.Alert, id string) Instruction {
	priority := IMPORTANT
	if alert.Severity == building.CRITICAL {
		priority = CRITICAL
	}
	return Instruction{
		Id:          uuid.NewString(),
		Action:      CAUTION,
		Description: "Caution: " + alert.Message,
		Spoken:      "Caution. " + alert.Message,
		Priority:    priority,
		NodeId:      id,
	}
}
