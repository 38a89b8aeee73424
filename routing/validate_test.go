package routing

import (
	"testing"

	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
)

func TestValidateRoute(t *testing.T) {
	m := corridor_map()
	route, ok := FindPath(m, "a", "c", Preferences{})
	if !ok {
		t.Fatalf("no route found")
	}

	if !ValidateRoute(m, route) {
		t.Errorf("fresh route on an alert-free map must be valid")
	}
}

func TestValidateRouteNodeAlert(t *testing.T) {
	m := corridor_map()
	route, _ := FindPath(m, "a", "c", Preferences{})

	alerts := []building.Alert{
		{Id: "a1", Kind: building.HAZARD, Nodes: []string{"b"}, Message: "wet floor", Severity: building.WARNING},
	}
	updated := with_alerts(alerts)
	if ValidateRoute(updated, route) {
		t.Errorf("route over an alerted node must be invalid")
	}
}

func TestValidateRouteEdgeAlert(t *testing.T) {
	m := corridor_map()
	route, _ := FindPath(m, "a", "c", Preferences{})

	alerts := []building.Alert{
		{Id: "a1", Kind: building.CLOSURE, Edges: []string{"bc"}, Message: "closed", Severity: building.CRITICAL},
	}
	updated := with_alerts(alerts)
	if ValidateRoute(updated, route) {
		t.Errorf("route over an alerted edge must be invalid")
	}
}

func TestValidateRouteUnrelatedAlert(t *testing.T) {
	m := corridor_map()
	route, _ := FindPath(m, "a", "c", Preferences{})

	alerts := []building.Alert{
		{Id: "a1", Kind: building.EVENT, Nodes: []string{"elsewhere"}, Message: "event", Severity: building.INFO},
	}
	updated := with_alerts(alerts)
	if !ValidateRoute(updated, route) {
		t.Errorf("unrelated alerts must not invalidate the route")
	}
}

// with_alerts rebuilds the corridor map with a new alert snapshot.
func with_alerts(alerts []building.Alert) *building.MapModel {
	nodes := []building.Node{
		{Id: "a", Name: "Room A", Type: building.ROOM, Loc: geo.Coord{0, 0}, Accessible: true},
		{Id: "b", Name: "Hall", Type: building.HALLWAY, Loc: geo.Coord{0, 10}, Accessible: true},
		{Id: "c", Name: "Room C", Type: building.ROOM, Loc: geo.Coord{0, 20}, Accessible: true},
	}
	edges := []building.Edge{
		{Id: "ab", From: "a", To: "b", Distance: 10, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
		{Id: "bc", From: "b", To: "c", Distance: 10, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
	}
	return building.NewMapModel(nodes, edges, alerts)
}
