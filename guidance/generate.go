package guidance

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
)

//*******************************************
// instruction generator
//*******************************************

// Generate converts a path's geometry into an ordered list of spoken
// instructions. A path shorter than two nodes has nothing to narrate and
// yields an empty list.
//
// Interior nodes only produce an instruction when they are significant:
// doors, elevators, stairs and intersections always do, any other node
// only when the walker has to turn. Straight hallway nodes are absorbed
// into the accumulated distance of the next instruction.
func Generate(m *building.MapModel, ids []string) []Instruction {
	instructions := make([]Instruction, 0, len(ids))
	if len(ids) < 2 {
		return instructions
	}

	nodes := make([]building.Node, len(ids))
	for i, id := range ids {
		nodes[i], _ = m.GetNode(id)
	}

	step := 1
	instructions = append(instructions, start_instruction(m, nodes, &step))

	accumulated := segment_distance(m, nodes[0], nodes[1])
	for i := 1; i < len(nodes)-1; i++ {
		in_bearing := geo.Bearing(nodes[i-1].Loc, nodes[i].Loc)
		out_bearing := geo.Bearing(nodes[i].Loc, nodes[i+1].Loc)
		turn := ClassifyTurn(geo.TurnAngle(in_bearing, out_bearing))

		if is_significant(nodes[i], turn) {
			instructions = append(instructions, node_instruction(nodes[i], nodes[i+1], turn, accumulated, &step))
			accumulated = 0
		}
		accumulated += segment_distance(m, nodes[i], nodes[i+1])
	}

	instructions = append(instructions, arrive_instruction(nodes, accumulated, &step))
	return instructions
}

func is_significant(node building.Node, turn Action) bool {
	switch node.Type {
	case building.DOOR, building.ELEVATOR, building.STAIRS, building.INTERSECTION:
		return true
	}
	return turn != GO_STRAIGHT
}

// segment_distance prefers the connecting edge's distance and falls back
// to plain geometry when the pair is not edge-connected.
func segment_distance(m *building.MapModel, a, b building.Node) float64 {
	if edge, ok := m.EdgeBetween(a.Id, b.Id); ok {
		return edge.Distance
	}
	return geo.Distance(a.Loc, b.Loc)
}

//*******************************************
// instruction bodies
//*******************************************

func start_instruction(m *building.MapModel, nodes []building.Node, step *int) Instruction {
	start := nodes[0]
	heading := geo.CompassLabel(geo.Bearing(start.Loc, nodes[1].Loc))

	spoken := fmt.Sprintf("Starting navigation from %s. Face %s.", start.Name, heading)
	if start.Meta.Description != "" {
		spoken += " " + start.Meta.Description
	}
	return new_instruction(step, Instruction{
		Action:      START,
		Description: fmt.Sprintf("Start at %s, facing %s", start.Name, heading),
		Spoken:      spoken,
		Landmark:    landmark_for(start),
		Priority:    NORMAL,
		NodeId:      start.Id,
	})
}

func node_instruction(node, next building.Node, turn Action, walked float64, step *int) Instruction {
	walk := DistancePhrase(walked)

	switch node.Type {
	case building.ELEVATOR:
		return new_instruction(step, Instruction{
			Action:      TAKE_ELEVATOR,
			Description: "Take the elevator",
			Spoken:      fmt.Sprintf("Walk %s, then take the elevator.", walk),
			Distance:    walked,
			Landmark:    landmark_for(node),
			Priority:    IMPORTANT,
			NodeId:      node.Id,
		})
	case building.STAIRS:
		action := TAKE_STAIRS_DN
		direction := "down"
		if next.Floor > node.Floor {
			action = TAKE_STAIRS_UP
			direction = "up"
		}
		return new_instruction(step, Instruction{
			Action:      action,
			Description: fmt.Sprintf("Take the stairs %s", direction),
			Spoken:      fmt.Sprintf("Walk %s, then take the stairs %s.", walk, direction),
			Distance:    walked,
			Landmark:    landmark_for(node),
			Priority:    IMPORTANT,
			NodeId:      node.Id,
		})
	case building.DOOR:
		name := node.Name
		if node.Meta.RoomNumber != "" {
			name = "room " + node.Meta.RoomNumber
		}
		if name == "" {
			name = next.Name
		}
		return new_instruction(step, Instruction{
			Action:      ENTER_DOOR,
			Description: fmt.Sprintf("%s and go through the door to %s", capitalize(turn_phrase(turn)), name),
			Spoken:      fmt.Sprintf("Walk %s, then %s and go through the door to %s.", walk, turn_phrase(turn), name),
			Distance:    walked,
			Landmark:    landmark_for(node),
			Priority:    NORMAL,
			NodeId:      node.Id,
		})
	default:
		landmark := landmark_for(node)
		description := capitalize(turn_phrase(turn))
		spoken := fmt.Sprintf("Walk %s, then %s.", walk, turn_phrase(turn))
		if landmark != "" {
			description += " at " + landmark
			spoken = fmt.Sprintf("Walk %s, then %s at %s.", walk, turn_phrase(turn), landmark)
		}
		return new_instruction(step, Instruction{
			Action:      turn,
			Description: description,
			Spoken:      spoken,
			Distance:    walked,
			Landmark:    landmark,
			Priority:    NORMAL,
			NodeId:      node.Id,
		})
	}
}

func arrive_instruction(nodes []building.Node, walked float64, step *int) Instruction {
	dest := nodes[len(nodes)-1]
	prev := nodes[len(nodes)-2]

	// relative direction from the final approach, small offsets read as ahead
	dx := dest.Loc.X() - prev.Loc.X()
	side := "ahead"
	if dx >= 2 {
		side = "on your right"
	} else if dx <= -2 {
		side = "on your left"
	}

	name := dest.Name
	if dest.Meta.RoomNumber != "" {
		name = fmt.Sprintf("%s, room %s", dest.Name, dest.Meta.RoomNumber)
	}
	return new_instruction(step, Instruction{
		Action:      ARRIVE,
		Description: fmt.Sprintf("Arrive at %s", name),
		Spoken:      fmt.Sprintf("Walk %s. You have arrived at %s. It is %s.", DistancePhrase(walked), name, side),
		Distance:    walked,
		Landmark:    landmark_for(dest),
		Priority:    IMPORTANT,
		NodeId:      dest.Id,
	})
}

func new_instruction(step *int, instr Instruction) Instruction {
	instr.Id = uuid.NewString()
	instr.Step = *step
	*step += 1
	return instr
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
