package routing

import (
	"math"

	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
	. "github.com/roomroute/indoornav/util"
)

// FloorPenalty is the heuristic distance equivalent of one floor level.
const FloorPenalty = 4.0

// ElevatorDiscount scales elevator edge costs when elevators are preferred.
const ElevatorDiscount = 0.8

type node_flag struct {
	dist float64
	prev string
}

//*******************************************
// pathfinder
//*******************************************

// FindPath runs a constrained A* search between two node ids and
// assembles the resulting route.
//
// The open set is a binary-heap priority queue on f = g + h; nodes of
// equal f leave the queue in insertion order. An unknown start or end id
// reports the same not-found as an unreachable one.
func FindPath(m *building.MapModel, start, end string, prefs Preferences) (*Route, bool) {
	start_node, start_ok := m.GetNode(start)
	end_node, end_ok := m.GetNode(end)
	if !start_ok || !end_ok {
		return nil, false
	}

	adjacency := BuildGraph(m, prefs)

	flags := NewDict[string, node_flag](m.NodeCount())
	flags[start] = node_flag{dist: 0}
	heap := NewPriorityQueue[string, float64](m.NodeCount())
	heap.Enqueue(start, heuristic(start_node, end_node))

	visited := NewDict[string, bool](m.NodeCount())
	for {
		curr_id, ok := heap.Dequeue()
		if !ok {
			return nil, false
		}
		if visited.ContainsKey(curr_id) {
			continue
		}
		visited[curr_id] = true
		if curr_id == end {
			break
		}
		curr_flag := flags[curr_id]
		for _, edge := range adjacency[curr_id] {
			// closed edges are only honored without avoid-stairs,
			// mirroring the behavior of the source system
			if edge.Closed && !prefs.AvoidStairs {
				continue
			}
			cost := edge.Distance
			if prefs.PreferElevator && edge.Type == building.EDGE_ELEVATOR {
				cost *= ElevatorDiscount
			}
			new_dist := curr_flag.dist + cost
			if prefs.MaxDistance > 0 && new_dist > prefs.MaxDistance {
				continue
			}
			other_flag, seen := flags[edge.To]
			if !seen || new_dist < other_flag.dist {
				flags[edge.To] = node_flag{dist: new_dist, prev: curr_id}
				other_node, _ := m.GetNode(edge.To)
				heap.Enqueue(edge.To, new_dist+heuristic(other_node, end_node))
			}
		}
	}

	// walk the predecessor map back to start
	ids := NewList[string](10)
	curr := end
	for {
		ids.Add(curr)
		if curr == start {
			break
		}
		curr = flags[curr].prev
	}
	reverse(ids)

	return AssembleRoute(m, ids), true
}

func heuristic(a, b building.Node) float64 {
	floors := math.Abs(float64(a.Floor) - float64(b.Floor))
	return geo.Distance(a.Loc, b.Loc) + floors*FloorPenalty
}

func reverse(ids List[string]) {
	for i, j := 0, ids.Length()-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}
