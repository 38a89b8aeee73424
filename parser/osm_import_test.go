package parser

import (
	"math"
	"testing"

	"github.com/roomroute/indoornav/building"
)

func TestImportOSM(t *testing.T) {
	m := ImportOSM("./testdata/floor.osm")

	if m.NodeCount() != 4 {
		t.Fatalf("nodes = %v; want 4", m.NodeCount())
	}
	// way 12 references a missing node, only its dangling segment is dropped
	if m.EdgeCount() != 3 {
		t.Fatalf("edges = %v; want 3", m.EdgeCount())
	}

	room, ok := m.GetNode("osm_1")
	if !ok || room.Type != building.ROOM {
		t.Errorf("osm_1 = %v/%v; want a room", room.Type, ok)
	}
	if room.Name != "Seminar Room" || room.Meta.RoomNumber != "0101" {
		t.Errorf("room = %q/%q; want Seminar Room 0101", room.Name, room.Meta.RoomNumber)
	}
	if room.Floor != 1 {
		t.Errorf("room floor = %v; want 1", room.Floor)
	}

	door, _ := m.GetNode("osm_2")
	if door.Type != building.DOOR {
		t.Errorf("osm_2 type = %v; want door", door.Type)
	}
	lift, _ := m.GetNode("osm_4")
	if lift.Type != building.ELEVATOR {
		t.Errorf("osm_4 type = %v; want elevator", lift.Type)
	}

	// room numbers from ref tags are resolvable
	if id, ok := m.ResolveLocation("0101"); !ok || id != "osm_1" {
		t.Errorf("ResolveLocation(0101) = %q/%v; want osm_1", id, ok)
	}

	// nodes 1 and 2 are 0.0001 degrees of latitude apart
	edge, ok := m.EdgeBetween("osm_1", "osm_2")
	if !ok {
		t.Fatal("no edge between osm_1 and osm_2")
	}
	if math.Abs(edge.Distance-11.054) > 0.01 {
		t.Errorf("edge distance = %v; want about 11.05", edge.Distance)
	}
	if edge.Type != building.EDGE_HALLWAY || !edge.Bidirectional {
		t.Errorf("edge = %v bidi %v; want bidirectional hallway", edge.Type, edge.Bidirectional)
	}

	lift_edge, ok := m.EdgeBetween("osm_3", "osm_4")
	if !ok {
		t.Fatal("no edge between osm_3 and osm_4")
	}
	if lift_edge.Type != building.EDGE_ELEVATOR {
		t.Errorf("elevator way edge type = %v; want elevator", lift_edge.Type)
	}
}
