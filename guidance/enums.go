package guidance

import (
	"encoding/json"
	"errors"
)

//*******************************************
// actions
//*******************************************

type Action byte

const (
	START          Action = 0
	WALK_FORWARD   Action = 1
	TURN_LEFT      Action = 2
	TURN_RIGHT     Action = 3
	TURN_AROUND    Action = 4
	SLIGHT_LEFT    Action = 5
	SLIGHT_RIGHT   Action = 6
	GO_STRAIGHT    Action = 7
	TAKE_ELEVATOR  Action = 8
	TAKE_STAIRS_UP Action = 9
	TAKE_STAIRS_DN Action = 10
	ENTER_DOOR     Action = 11
	EXIT_DOOR      Action = 12
	ARRIVE         Action = 13
	CAUTION        Action = 14
)

func (self Action) String() string {
	switch self {
	case START:
		return "start"
	case WALK_FORWARD:
		return "walk_forward"
	case TURN_LEFT:
		return "turn_left"
	case TURN_RIGHT:
		return "turn_right"
	case TURN_AROUND:
		return "turn_around"
	case SLIGHT_LEFT:
		return "slight_left"
	case SLIGHT_RIGHT:
		return "slight_right"
	case GO_STRAIGHT:
		return "go_straight"
	case TAKE_ELEVATOR:
		return "take_elevator"
	case TAKE_STAIRS_UP:
		return "take_stairs_up"
	case TAKE_STAIRS_DN:
		return "take_stairs_down"
	case ENTER_DOOR:
		return "enter_door"
	case EXIT_DOOR:
		return "exit_door"
	case ARRIVE:
		return "arrive"
	case CAUTION:
		return "caution"
	default:
		panic("unknown action")
	}
}
func (self Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Action) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	action, err := ActionFromString(typ)
	*self = action
	return err
}

func ActionFromString(s string) (Action, error) {
	switch s {
	case "start":
		return START, nil
	case "walk_forward":
		return WALK_FORWARD, nil
	case "turn_left":
		return TURN_LEFT, nil
	case "turn_right":
		return TURN_RIGHT, nil
	case "turn_around":
		return TURN_AROUND, nil
	case "slight_left":
		return SLIGHT_LEFT, nil
	case "slight_right":
		return SLIGHT_RIGHT, nil
	case "go_straight":
		return GO_STRAIGHT, nil
	case "take_elevator":
		return TAKE_ELEVATOR, nil
	case "take_stairs_up":
		return TAKE_STAIRS_UP, nil
	case "take_stairs_down":
		return TAKE_STAIRS_DN, nil
	case "enter_door":
		return ENTER_DOOR, nil
	case "exit_door":
		return EXIT_DOOR, nil
	case "arrive":
		return ARRIVE, nil
	case "caution":
		return CAUTION, nil
	default:
		return START, errors.New("unknown action")
	}
}

//*******************************************
// priorities
//*******************************************

type Priority byte

const (
	NORMAL    Priority = 0
	IMPORTANT Priority = 1
	CRITICAL  Priority = 2
)

func (self Priority) String() string {
	switch self {
	case NORMAL:
		return "normal"
	case IMPORTANT:
		return "important"
	case CRITICAL:
		return "critical"
	default:
		panic("unknown priority")
	}
}
func (self Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Priority) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	prio, err := PriorityFromString(typ)
	*self = prio
	return err
}

func PriorityFromString(s string) (Priority, error) {
	switch s {
	case "normal":
		return NORMAL, nil
	case "important":
		return IMPORTANT, nil
	case "critical":
		return CRITICAL, nil
	default:
		return NORMAL, errors.New("unknown priority")
	}
}
