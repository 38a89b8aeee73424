package building

import (
	"time"

	"github.com/roomroute/indoornav/geo"
)

//*******************************************
// map structs
//*******************************************

type Node struct {
	Id         string   `json:"id"`
	Name       string   `json:"name"`
	Type       NodeType `json:"type"`
	Loc        geo.Coord `json:"loc"`
	Floor      int16    `json:"floor"`
	Accessible bool     `json:"accessible"`
	// Informational only, adjacency is taken from the edge set.
	Connections []string `json:"connections,omitempty"`
	Meta        NodeMeta `json:"meta,omitempty"`
}

type NodeMeta struct {
	RoomNumber  string   `json:"room_number,omitempty"`
	Landmarks   []string `json:"landmarks,omitempty"`
	Description string   `json:"description,omitempty"`
	DoorWidth   float64  `json:"door_width,omitempty"`
}

type Edge struct {
	Id            string   `json:"id"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	Distance      float64  `json:"distance"`
	Type          EdgeType `json:"type"`
	Accessible    bool     `json:"accessible"`
	Bidirectional bool     `json:"bidirectional"`
	Meta          EdgeMeta `json:"meta,omitempty"`
}

type EdgeMeta struct {
	Width        float64 `json:"width,omitempty"`
	Closed       bool    `json:"closed,omitempty"`
	ClosedReason string  `json:"closed_reason,omitempty"`
}

type Alert struct {
	Id       string     `json:"id"`
	Kind     AlertKind  `json:"kind"`
	Nodes    []string   `json:"nodes,omitempty"`
	Edges    []string   `json:"edges,omitempty"`
	Message  string     `json:"message"`
	Severity Severity   `json:"severity"`
	Starts   *time.Time `json:"starts,omitempty"`
	Ends     *time.Time `json:"ends,omitempty"`
}
