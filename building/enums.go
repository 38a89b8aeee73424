package building

import (
	"encoding/json"
	"errors"
)

//*******************************************
// node types
//*******************************************

type NodeType byte

const (
	ROOM           NodeType = 0
	DOOR           NodeType = 1
	INTERSECTION   NodeType = 2
	HALLWAY        NodeType = 3
	ELEVATOR       NodeType = 4
	STAIRS         NodeType = 5
	ENTRANCE       NodeType = 6
	EXIT           NodeType = 7
	RESTROOM       NodeType = 8
	EMERGENCY_EXIT NodeType = 9
)

func (self NodeType) String() string {
	switch self {
	case ROOM:
		return "room"
	case DOOR:
		return "door"
	case INTERSECTION:
		return "intersection"
	case HALLWAY:
		return "hallway"
	case ELEVATOR:
		return "elevator"
	case STAIRS:
		return "stairs"
	case ENTRANCE:
		return "entrance"
	case EXIT:
		return "exit"
	case RESTROOM:
		return "restroom"
	case EMERGENCY_EXIT:
		return "emergency_exit"
	default:
		panic("unknown node type")
	}
}
func (self NodeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *NodeType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	node_typ, err := NodeTypeFromString(typ)
	*self = node_typ
	return err
}

func NodeTypeFromString(s string) (NodeType, error) {
	switch s {
	case "room":
		return ROOM, nil
	case "door":
		return DOOR, nil
	case "intersection":
		return INTERSECTION, nil
	case "hallway":
		return HALLWAY, nil
	case "elevator":
		return ELEVATOR, nil
	case "stairs":
		return STAIRS, nil
	case "entrance":
		return ENTRANCE, nil
	case "exit":
		return EXIT, nil
	case "restroom":
		return RESTROOM, nil
	case "emergency_exit":
		return EMERGENCY_EXIT, nil
	default:
		return ROOM, errors.New("unknown node type")
	}
}

//*******************************************
// edge types
//*******************************************

type EdgeType byte

const (
	EDGE_HALLWAY  EdgeType = 0
	EDGE_STAIRS   EdgeType = 1
	EDGE_ELEVATOR EdgeType = 2
	EDGE_RAMP     EdgeType = 3
	EDGE_DOORWAY  EdgeType = 4
	EDGE_OUTDOOR  EdgeType = 5
)

func (self EdgeType) String() string {
	switch self {
	case EDGE_HALLWAY:
		return "hallway"
	case EDGE_STAIRS:
		return "stairs"
	case EDGE_ELEVATOR:
		return "elevator"
	case EDGE_RAMP:
		return "ramp"
	case EDGE_DOORWAY:
		return "doorway"
	case EDGE_OUTDOOR:
		return "outdoor"
	default:
		panic("unknown edge type")
	}
}
func (self EdgeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *EdgeType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	edge_typ, err := EdgeTypeFromString(typ)
	*self = edge_typ
	return err
}

func EdgeTypeFromString(s string) (EdgeType, error) {
	switch s {
	case "hallway":
		return EDGE_HALLWAY, nil
	case "stairs":
		return EDGE_STAIRS, nil
	case "elevator":
		return EDGE_ELEVATOR, nil
	case "ramp":
		return EDGE_RAMP, nil
	case "doorway":
		return EDGE_DOORWAY, nil
	case "outdoor":
		return EDGE_OUTDOOR, nil
	default:
		return EDGE_HALLWAY, errors.New("unknown edge type")
	}
}

//*******************************************
// alert kinds
//*******************************************

type AlertKind byte

const (
	CLOSURE      AlertKind = 0
	HAZARD       AlertKind = 1
	CONSTRUCTION AlertKind = 2
	EVENT        AlertKind = 3
)

func (self AlertKind) String() string {
	switch self {
	case CLOSURE:
		return "closure"
	case HAZARD:
		return "hazard"
	case CONSTRUCTION:
		return "construction"
	case EVENT:
		return "event"
	default:
		panic("unknown alert kind")
	}
}
func (self AlertKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *AlertKind) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	kind, err := AlertKindFromString(typ)
	*self = kind
	return err
}

func AlertKindFromString(s string) (AlertKind, error) {
	switch s {
	case "closure":
		return CLOSURE, nil
	case "hazard":
		return HAZARD, nil
	case "construction":
		return CONSTRUCTION, nil
	case "event":
		return EVENT, nil
	default:
		return CLOSURE, errors.New("unknown alert kind")
	}
}

//*******************************************
// severities
//*******************************************

type Severity byte

const (
	INFO     Severity = 0
	WARNING  Severity = 1
	CRITICAL Severity = 2
)

func (self Severity) String() string {
	switch self {
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case CRITICAL:
		return "critical"
	default:
		panic("unknown severity")
	}
}
func (self Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *Severity) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	sev, err := SeverityFromString(typ)
	*self = sev
	return err
}

func SeverityFromString(s string) (Severity, error) {
	switch s {
	case "info":
		return INFO, nil
	case "warning":
		return WARNING, nil
	case "critical":
		return CRITICAL, nil
	default:
		return INFO, errors.New("unknown severity")
	}
}
