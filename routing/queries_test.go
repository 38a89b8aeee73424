package routing

import (
	"testing"

	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
)

func restroom_map() *building.MapModel {
	nodes := []building.Node{
		{Id: "s", Type: building.ROOM, Loc: geo.Coord{0, 0}, Accessible: true},
		{Id: "wc_near", Type: building.RESTROOM, Loc: geo.Coord{0, 10}, Accessible: true},
		{Id: "wc_far", Type: building.RESTROOM, Loc: geo.Coord{0, -15}, Accessible: true},
	}
	edges := []building.Edge{
		{Id: "e1", From: "s", To: "wc_near", Distance: 10, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
		{Id: "e2", From: "s", To: "wc_far", Distance: 15, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
	}
	return building.NewMapModel(nodes, edges, nil)
}

func TestFindNearestOfType(t *testing.T) {
	m := restroom_map()

	route, ok := FindNearestOfType(m, "s", building.RESTROOM, Preferences{})
	if !ok {
		t.Fatalf("no restroom found")
	}
	if route.End != "wc_near" {
		t.Errorf("End = %v; want wc_near", route.End)
	}
	if route.TotalDistance != 10 {
		t.Errorf("TotalDistance = %v; want 10", route.TotalDistance)
	}
}

func TestFindNearestOfTypeTie(t *testing.T) {
	// equal distances resolve to the first candidate in map order
	nodes := []building.Node{
		{Id: "s", Type: building.ROOM, Loc: geo.Coord{0, 0}, Accessible: true},
		{Id: "wc_a", Type: building.RESTROOM, Loc: geo.Coord{0, 10}, Accessible: true},
		{Id: "wc_b", Type: building.RESTROOM, Loc: geo.Coord{0, -10}, Accessible: true},
	}
	edges := []building.Edge{
		{Id: "e1", From: "s", To: "wc_a", Distance: 10, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
		{Id: "e2", From: "s", To: "wc_b", Distance: 10, Type: building.EDGE_HALLWAY, Accessible: true, Bidirectional: true},
	}
	m := building.NewMapModel(nodes, edges, nil)

	route, ok := FindNearestOfType(m, "s", building.RESTROOM, Preferences{})
	if !ok {
		t.Fatalf("no restroom found")
	}
	if route.End != "wc_a" {
		t.Errorf("End = %v; want wc_a", route.End)
	}
}

func TestFindNearestOfTypeNotFound(t *testing.T) {
	m := restroom_map()

	if _, ok := FindNearestOfType(m, "s", building.ELEVATOR, Preferences{}); ok {
		t.Errorf("no elevator exists, want not-found")
	}
}

func TestFindAlternativesDedup(t *testing.T) {
	// single corridor, all three profiles agree
	m := corridor_map()

	routes := FindAlternatives(m, "a", "c", 3)
	if len(routes) != 1 {
		t.Errorf("alternatives = %v; want 1 after dedup", len(routes))
	}
}

func TestFindAlternativesDistinct(t *testing.T) {
	m := stairs_map()

	routes := FindAlternatives(m, "s", "t", 3)
	if len(routes) != 2 {
		t.Fatalf("alternatives = %v; want 2", len(routes))
	}
	// profile-tried order, not sorted by distance
	if routes[0].TotalDistance != 10 {
		t.Errorf("routes[0].TotalDistance = %v; want 10", routes[0].TotalDistance)
	}
	if routes[1].TotalDistance != 30 {
		t.Errorf("routes[1].TotalDistance = %v; want 30", routes[1].TotalDistance)
	}
}

func TestFindAlternativesCount(t *testing.T) {
	m := stairs_map()

	routes := FindAlternatives(m, "s", "t", 1)
	if len(routes) != 1 {
		t.Errorf("alternatives = %v; want 1", len(routes))
	}
}

func TestComponentCount(t *testing.T) {
	m := corridor_map()
	if got := ComponentCount(m); got != 1 {
		t.Errorf("ComponentCount = %v; want 1", got)
	}

	nodes := []building.Node{
		{Id: "a", Type: building.ROOM, Loc: geo.Coord{0, 0}, Accessible: true},
		{Id: "b", Type: building.ROOM, Loc: geo.Coord{0, 10}, Accessible: true},
	}
	split := building.NewMapModel(nodes, nil, nil)
	if got := ComponentCount(split); got != 2 {
		t.Errorf("ComponentCount = %v; want 2", got)
	}
}
