package parser

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/geo"
	. "github.com/roomroute/indoornav/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm indoor import
//*******************************************

// ImportOSM builds a MapModel from an OSM XML extract using indoor
// tagging (indoor=*, door=*, level=*, highway=steps/elevator/footway).
// Geographic coordinates are projected onto a local planar frame in
// meters anchored at the extract's first node.
func ImportOSM(file string) *building.MapModel {
	slog.Info("importing indoor map from " + file)

	osm_nodes := NewDict[int64, *osm.Node](1000)
	ordered := NewList[*osm.Node](1000)
	ways := NewList[*osm.Way](100)
	_ScanOsm(file, &osm_nodes, &ordered, &ways)

	proj := _NewProjection(ordered)

	nodes := NewList[building.Node](100)
	node_ids := NewDict[int64, string](100)
	for _, osm_node := range ordered {
		node := _ConvertNode(osm_node, proj)
		node_ids[int64(osm_node.ID)] = node.Id
		nodes.Add(node)
	}

	edges := NewList[building.Edge](100)
	for _, way := range ways {
		typ := _EdgeTypeOf(way)
		accessible := way.Tags.Find("wheelchair") != "no"
		for i := 1; i < len(way.Nodes); i++ {
			from, from_ok := node_ids[int64(way.Nodes[i-1].ID)]
			to, to_ok := node_ids[int64(way.Nodes[i].ID)]
			if !from_ok || !to_ok {
				continue
			}
			node_a := osm_nodes[int64(way.Nodes[i-1].ID)]
			node_b := osm_nodes[int64(way.Nodes[i].ID)]
			edges.Add(building.Edge{
				Id:            fmt.Sprintf("way_%d_%d", way.ID, i),
				From:          from,
				To:            to,
				Distance:      geo.Distance(proj.Project(node_a), proj.Project(node_b)),
				Type:          typ,
				Accessible:    accessible,
				Bidirectional: true,
			})
		}
	}

	slog.Info(fmt.Sprintf("imported %d nodes, %d edges", nodes.Length(), edges.Length()))
	return building.NewMapModel(nodes, edges, nil)
}

func _ScanOsm(file string, osm_nodes *Dict[int64, *osm.Node], ordered *List[*osm.Node], ways *List[*osm.Way]) {
	f, err := os.Open(file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	scanner := osmxml.New(context.Background(), f)
	defer scanner.Close()
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			(*osm_nodes)[int64(obj.ID)] = obj
			ordered.Add(obj)
		case *osm.Way:
			if _IsWalkable(obj) {
				ways.Add(obj)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
}

func _IsWalkable(way *osm.Way) bool {
	if way.Tags.Find("indoor") == "corridor" {
		return true
	}
	switch way.Tags.Find("highway") {
	case "footway", "corridor", "steps", "elevator":
		return true
	}
	return false
}

func _EdgeTypeOf(way *osm.Way) building.EdgeType {
	switch way.Tags.Find("highway") {
	case "steps":
		return building.EDGE_STAIRS
	case "elevator":
		return building.EDGE_ELEVATOR
	}
	if way.Tags.Find("ramp") == "yes" {
		return building.EDGE_RAMP
	}
	if way.Tags.Find("indoor") == "no" {
		return building.EDGE_OUTDOOR
	}
	return building.EDGE_HALLWAY
}

func _ConvertNode(osm_node *osm.Node, proj _Projection) building.Node {
	typ := _NodeTypeOf(osm_node)
	name := osm_node.Tags.Find("name")
	if name == "" {
		name = osm_node.Tags.Find("ref")
	}
	floor := int16(0)
	if level, err := strconv.Atoi(osm_node.Tags.Find("level")); err == nil {
		floor = int16(level)
	}
	return building.Node{
		Id:         fmt.Sprintf("osm_%d", osm_node.ID),
		Name:       name,
		Type:       typ,
		Loc:        proj.Project(osm_node),
		Floor:      floor,
		Accessible: osm_node.Tags.Find("wheelchair") != "no",
		Meta: building.NodeMeta{
			RoomNumber:  osm_node.Tags.Find("ref"),
			Description: osm_node.Tags.Find("description"),
		},
	}
}

func _NodeTypeOf(osm_node *osm.Node) building.NodeType {
	tags := osm_node.Tags
	if tags.Find("emergency") == "exit" {
		return building.EMERGENCY_EXIT
	}
	if entrance := tags.Find("entrance"); entrance == "yes" || entrance == "main" {
		return building.ENTRANCE
	}
	if tags.Find("door") != "" && tags.Find("door") != "no" {
		return building.DOOR
	}
	if tags.Find("amenity") == "toilets" {
		return building.RESTROOM
	}
	switch tags.Find("highway") {
	case "elevator":
		return building.ELEVATOR
	case "steps":
		return building.STAIRS
	}
	if tags.Find("indoor") == "room" {
		return building.ROOM
	}
	return building.HALLWAY
}

//*******************************************
// local projection
//*******************************************

// _Projection maps geographic coordinates onto a planar meter frame
// anchored at a reference point, equirectangular approximation.
type _Projection struct {
	lat0 float64
	lon0 float64
	k    float64
}

func _NewProjection(ordered List[*osm.Node]) _Projection {
	if ordered.Length() == 0 {
		return _Projection{k: 1}
	}
	anchor := ordered.Get(0)
	return _Projection{
		lat0: anchor.Lat,
		lon0: anchor.Lon,
		k:    math.Cos(anchor.Lat * math.Pi / 180),
	}
}

func (self _Projection) Project(node *osm.Node) geo.Coord {
	x := (node.Lon - self.lon0) * self.k * 111320
	y := (node.Lat - self.lat0) * 110540
	return geo.Coord{x, y}
}
