package main

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/roomroute/indoornav/building"
	"github.com/roomroute/indoornav/guidance"
	"github.com/roomroute/indoornav/routing"
	"golang.org/x/exp/slog"
)

//**********************************************************
// navigation requests and responses
//**********************************************************

type RouteRequest struct {
	// node ids or room numbers
	Start       string              `json:"start"`
	End         string              `json:"end"`
	Preferences routing.Preferences `json:"preferences"`
	Simplify    bool                `json:"simplify"`
}

type NearestRequest struct {
	Start       string              `json:"start"`
	Type        string              `json:"type"`
	Preferences routing.Preferences `json:"preferences"`
}

type AlternativesRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count"`
}

type ValidateRequest struct {
	Route *routing.Route `json:"route"`
}

type RouteResponse struct {
	Route    *routing.Route             `json:"route"`
	Geometry *geojson.FeatureCollection `json:"geometry"`
}

type AlternativesResponse struct {
	Routes []*routing.Route `json:"routes"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
}

type NodesResponse struct {
	Nodes []building.Node `json:"nodes"`
}

func NewRouteResponse(route *routing.Route) RouteResponse {
	return RouteResponse{
		Route:    route,
		Geometry: RouteGeometry(route),
	}
}

// RouteGeometry renders the path as a GeoJSON polyline plus one point
// feature per waypoint for marker display.
func RouteGeometry(route *routing.Route) *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(route.Path))
	for _, node := range route.Path {
		line = append(line, orb.Point{node.Loc.X(), node.Loc.Y()})
	}
	line_feature := geojson.NewFeature(line)
	line_feature.Properties["distance"] = route.TotalDistance
	line_feature.Properties["time"] = route.TotalTime
	collection.Append(line_feature)

	for _, node := range route.Path {
		point := geojson.NewFeature(orb.Point{node.Loc.X(), node.Loc.Y()})
		point.Properties["node_id"] = node.NodeId
		point.Properties["name"] = node.Name
		point.Properties["type"] = node.Type.String()
		point.Properties["floor"] = node.Floor
		point.Properties["distance"] = node.Distance
		collection.Append(point)
	}
	return collection
}

//**********************************************************
// navigation handlers
//**********************************************************

func HandleRouteRequest(req RouteRequest) Result {
	start, ok := MAP.ResolveLocation(req.Start)
	if !ok {
		return NotFound("unknown start location: " + req.Start)
	}
	end, ok := MAP.ResolveLocation(req.End)
	if !ok {
		return NotFound("unknown end location: " + req.End)
	}

	slog.Debug(fmt.Sprintf("routing from %v to %v", start, end))
	route, found := routing.FindPath(MAP, start, end, req.Preferences)
	if !found {
		return NotFound("no route found")
	}

	instructions := guidance.Generate(MAP, route.NodeIds())
	instructions = guidance.Annotate(instructions, MAP, route.NodeIds())
	if req.Simplify {
		instructions = guidance.Simplify(instructions)
	}
	route.Instructions = instructions

	return OK(NewRouteResponse(route))
}

func HandleNearestRequest(req NearestRequest) Result {
	start, ok := MAP.ResolveLocation(req.Start)
	if !ok {
		return NotFound("unknown start location: " + req.Start)
	}
	typ, err := building.NodeTypeFromString(req.Type)
	if err != nil {
		return BadRequest("invalid node type: " + req.Type)
	}

	route, found := routing.FindNearestOfType(MAP, start, typ, req.Preferences)
	if !found {
		return NotFound("no reachable " + req.Type)
	}

	instructions := guidance.Generate(MAP, route.NodeIds())
	route.Instructions = guidance.Annotate(instructions, MAP, route.NodeIds())

	return OK(NewRouteResponse(route))
}

func HandleAlternativesRequest(req AlternativesRequest) Result {
	start, ok := MAP.ResolveLocation(req.Start)
	if !ok {
		return NotFound("unknown start location: " + req.Start)
	}
	end, ok := MAP.ResolveLocation(req.End)
	if !ok {
		return NotFound("unknown end location: " + req.End)
	}
	count := req.Count
	if count <= 0 {
		count = 3
	}

	routes := routing.FindAlternatives(MAP, start, end, count)
	for _, route := range routes {
		instructions := guidance.Generate(MAP, route.NodeIds())
		route.Instructions = guidance.Annotate(instructions, MAP, route.NodeIds())
	}
	return OK(AlternativesResponse{Routes: routes})
}

func HandleValidateRequest(req ValidateRequest) Result {
	if req.Route == nil {
		return BadRequest("missing route")
	}
	return OK(ValidateResponse{Valid: routing.ValidateRoute(MAP, req.Route)})
}

func HandleNodesRequest(_ none) Result {
	nodes := make([]building.Node, 0, MAP.NodeCount())
	for i := 0; i < MAP.NodeCount(); i++ {
		nodes = append(nodes, MAP.GetNodeAt(i))
	}
	return OK(NodesResponse{Nodes: nodes})
}
