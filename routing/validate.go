package routing

import (
	"github.com/roomroute/indoornav/building"
)

// ValidateRoute re-checks a previously computed route against the current
// alert snapshot. No search is performed, the check is pure and safe to
// run concurrently.
func ValidateRoute(m *building.MapModel, route *Route) bool {
	affected_nodes := m.AffectedNodes()
	affected_edges := m.AffectedEdges()

	for _, node := range route.Path {
		if affected_nodes.ContainsKey(node.NodeId) {
			return false
		}
	}
	for i := 1; i < len(route.Path); i++ {
		edge, ok := m.EdgeBetween(route.Path[i-1].NodeId, route.Path[i].NodeId)
		if ok && affected_edges.ContainsKey(edge.Id) {
			return false
		}
	}
	return true
}
