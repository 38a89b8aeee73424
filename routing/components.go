package routing

import (
	"github.com/roomroute/indoornav/building"
	. "github.com/roomroute/indoornav/util"
)

//*******************************************
// connectivity
//*******************************************

// ConnectedComponents labels every node with a component index using the
// unconstrained graph (closed edges count as traversable). Useful as a
// map-integrity check, a well-formed floor map has a single component.
func ConnectedComponents(m *building.MapModel) Dict[string, int] {
	adjacency := BuildGraph(m, Preferences{})

	groups := NewDict[string, int](m.NodeCount())
	group := 0
	for i := 0; i < m.NodeCount(); i++ {
		start := m.GetNodeAt(i).Id
		if groups.ContainsKey(start) {
			continue
		}
		queue := NewList[string](10)
		queue.Add(start)
		groups[start] = group
		for queue.Length() > 0 {
			curr := queue.Get(queue.Length() - 1)
			queue = queue[:queue.Length()-1]
			for _, edge := range adjacency[curr] {
				if !groups.ContainsKey(edge.To) {
					groups[edge.To] = group
					queue.Add(edge.To)
				}
			}
		}
		group += 1
	}
	return groups
}

// ComponentCount returns the number of connected components in the map.
func ComponentCount(m *building.MapModel) int {
	groups := ConnectedComponents(m)
	count := 0
	for _, g := range groups {
		if g+1 > count {
			count = g + 1
		}
	}
	return count
}
