package guidance

import (
	"fmt"
	"math"

	"github.com/roomroute/indoornav/building"
)

// StepLength is the length of one walking step in meters, used for
// short-range spoken distances.
const StepLength = 0.75

//*******************************************
// distance phrasing
//*******************************************

// DistancePhrase renders a walked distance as speakable text. Short
// distances are given in steps of 0.75 m, longer ones in meters rounded
// to the nearest 5.
func DistancePhrase(meters float64) string {
	steps := int(math.Round(meters / StepLength))
	switch {
	case steps <= 2:
		return "a couple of steps"
	case steps <= 5:
		return "a few steps"
	case steps <= 10:
		return fmt.Sprintf("about %d steps", steps)
	case steps <= 20:
		rounded := int(math.Round(float64(steps)/5)) * 5
		return fmt.Sprintf("about %d steps", rounded)
	default:
		rounded := int(math.Round(meters/5)) * 5
		return fmt.Sprintf("about %d meters", rounded)
	}
}

//*******************************************
// turn classification
//*******************************************

// ClassifyTurn maps the signed bearing difference (-180, 180] at an
// interior node to a turn action.
func ClassifyTurn(angle float64) Action {
	magnitude := math.Abs(angle)
	switch {
	case magnitude < 30:
		return GO_STRAIGHT
	case magnitude < 60:
		if angle < 0 {
			return SLIGHT_LEFT
		}
		return SLIGHT_RIGHT
	case magnitude < 150:
		if angle < 0 {
			return TURN_LEFT
		}
		return TURN_RIGHT
	default:
		return TURN_AROUND
	}
}

func turn_phrase(action Action) string {
	switch action {
	case GO_STRAIGHT:
		return "continue straight"
	case SLIGHT_LEFT:
		return "bear slightly left"
	case SLIGHT_RIGHT:
		return "bear slightly right"
	case TURN_LEFT:
		return "turn left"
	case TURN_RIGHT:
		return "turn right"
	case TURN_AROUND:
		return "turn around"
	default:
		return "continue straight"
	}
}

//*******************************************
// landmarks
//*******************************************

// landmark_for picks the landmark text for a node: explicit metadata
// first, then a type-specific default, else empty.
func landmark_for(node building.Node) string {
	if len(node.Meta.Landmarks) > 0 {
		return node.Meta.Landmarks[0]
	}
	switch node.Type {
	case building.ELEVATOR:
		return "the elevator"
	case building.STAIRS:
		return "the stairs"
	case building.DOOR:
		return "a door"
	case building.INTERSECTION:
		return "the intersection"
	case building.EXIT, building.EMERGENCY_EXIT, building.ENTRANCE:
		return "the exit"
	case building.RESTROOM:
		return "the restroom"
	default:
		return ""
	}
}
