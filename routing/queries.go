package routing

import (
	"github.com/roomroute/indoornav/building"
)

//*******************************************
// nearest-of-type
//*******************************************

// FindNearestOfType routes from start to every node of the requested
// type and keeps the shortest result. Ties go to the first candidate in
// map order. Brute force, maps stay in the tens of nodes.
func FindNearestOfType(m *building.MapModel, start string, typ building.NodeType, prefs Preferences) (*Route, bool) {
	var best *Route
	for _, id := range m.NodesOfType(typ) {
		if id == start {
			continue
		}
		route, ok := FindPath(m, start, id, prefs)
		if !ok {
			continue
		}
		if best == nil || route.TotalDistance < best.TotalDistance {
			best = route
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

//*******************************************
// alternatives
//*******************************************

// alternative_profiles are the fixed preference sets tried in order.
// More than these three are never attempted.
var alternative_profiles = []Preferences{
	{},
	{AvoidStairs: true, PreferElevator: true},
	{PreferElevator: true, AvoidCrowded: true},
}

// FindAlternatives collects up to count distinct routes between start and
// end, one per preference profile, in profile order.
func FindAlternatives(m *building.MapModel, start, end string, count int) []*Route {
	routes := make([]*Route, 0, len(alternative_profiles))
	for _, prefs := range alternative_profiles {
		if len(routes) >= count {
			break
		}
		route, ok := FindPath(m, start, end, prefs)
		if !ok {
			continue
		}
		duplicate := false
		for _, other := range routes {
			if same_path(route, other) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			routes = append(routes, route)
		}
	}
	return routes
}

func same_path(a, b *Route) bool {
	if len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i].NodeId != b.Path[i].NodeId {
			return false
		}
	}
	return true
}
