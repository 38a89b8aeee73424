package routing

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
	"github.com/roomroute/indoornav/guidance"
)

// WalkingSpeed is the assumed pedestrian speed in meters per second.
const WalkingSpeed = 1.2

//*******************************************
// preferences
//*******************************************

type Preferences struct {
	AvoidStairs    bool    `json:"avoid_stairs"`
	PreferElevator bool    `json:"prefer_elevator"`
	AvoidCrowded   bool    `json:"avoid_crowded"`
	MaxDistance    float64 `json:"max_distance"`
}

//*******************************************
// routes
//*******************************************

type RouteNode struct {
	NodeId   string            `json:"node_id"`
	Name     string            `json:"name"`
	Type     building.NodeType `json:"type"`
	Loc      geo.Coord         `json:"loc"`
	Floor    int16             `json:"floor"`
	Distance float64           `json:"distance"`
	Time     int               `json:"time"`
}

type Route struct {
	Id            string                 `json:"id"`
	Start         string                 `json:"start"`
	End           string                 `json:"end"`
	TotalDistance float64                `json:"total_distance"`
	TotalTime     int                    `json:"total_time"`
	Path          []RouteNode            `json:"path"`
	Instructions  []guidance.Instruction `json:"instructions"`
	CreatedAt     time.Time              `json:"created_at"`
}

// NodeIds returns the path's node-id sequence.
func (self *Route) NodeIds() []string {
	ids := make([]string, len(self.Path))
	for i, node := range self.Path {
		ids[i] = node.NodeId
	}
	return ids
}

//*******************************************
// route assembler
//*******************************************

// AssembleRoute builds a Route from a node-id sequence, accumulating
// distance over the connecting edges and deriving walking time.
// Instructions are left empty, generating them is a separate step.
func AssembleRoute(m *building.MapModel, ids []string) *Route {
	path := make([]RouteNode, 0, len(ids))
	distance := 0.0
	for i, id := range ids {
		node, _ := m.GetNode(id)
		if i > 0 {
			edge, ok := m.EdgeBetween(ids[i-1], id)
			if ok {
				distance += edge.Distance
			}
		}
		path = append(path, RouteNode{
			NodeId:   id,
			Name:     node.Name,
			Type:     node.Type,
			Loc:      node.Loc,
			Floor:    node.Floor,
			Distance: distance,
			Time:     int(math.Round(distance / WalkingSpeed)),
		})
	}
	route := &Route{
		Id:            uuid.NewString(),
		TotalDistance: distance,
		TotalTime:     int(math.Round(distance / WalkingSpeed)),
		Path:          path,
		Instructions:  []guidance.Instruction{},
		CreatedAt:     time.Now(),
	}
	if len(ids) > 0 {
		route.Start = ids[0]
		route.End = ids[len(ids)-1]
	}
	return route
}
