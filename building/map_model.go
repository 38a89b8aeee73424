package building

import (
	"strings"

	. "github.com/roomroute/indoornav/util"
)

//*******************************************
// map model
//*******************************************

// MapDocument is the on-disk JSON form of a building floor map.
type MapDocument struct {
	Building string  `json:"building"`
	Nodes    []Node  `json:"nodes"`
	Edges    []Edge  `json:"edges"`
	Alerts   []Alert `json:"alerts,omitempty"`
}

// MapModel is a read-only snapshot of one building map.
//
// Nodes and edges are kept in document order so that scans over them are
// deterministic (nearest-of-type ties resolve to the first candidate in
// that order).
type MapModel struct {
	nodes      List[Node]
	edges      List[Edge]
	alerts     List[Alert]
	node_index Dict[string, int]
	edge_index Dict[string, int]
}

func NewMapModel(nodes []Node, edges []Edge, alerts []Alert) *MapModel {
	node_index := NewDict[string, int](len(nodes))
	for i, node := range nodes {
		node_index[node.Id] = i
	}
	edge_index := NewDict[string, int](len(edges))
	for i, edge := range edges {
		edge_index[edge.Id] = i
	}
	return &MapModel{
		nodes:      nodes,
		edges:      edges,
		alerts:     alerts,
		node_index: node_index,
		edge_index: edge_index,
	}
}

func LoadMapModel(file string) *MapModel {
	doc := ReadJSONFromFile[MapDocument](file)
	return NewMapModel(doc.Nodes, doc.Edges, doc.Alerts)
}

func (self *MapModel) NodeCount() int {
	return self.nodes.Length()
}
func (self *MapModel) EdgeCount() int {
	return self.edges.Length()
}
func (self *MapModel) GetNodeAt(index int) Node {
	return self.nodes.Get(index)
}
func (self *MapModel) GetNode(id string) (Node, bool) {
	if index, ok := self.node_index[id]; ok {
		return self.nodes.Get(index), true
	}
	return Node{}, false
}
func (self *MapModel) GetEdge(id string) (Edge, bool) {
	if index, ok := self.edge_index[id]; ok {
		return self.edges.Get(index), true
	}
	return Edge{}, false
}
func (self *MapModel) Edges() List[Edge] {
	return self.edges
}
func (self *MapModel) Alerts() List[Alert] {
	return self.alerts
}

// NodesOfType returns ids of all nodes of the given type in map order.
func (self *MapModel) NodesOfType(typ NodeType) List[string] {
	ids := NewList[string](10)
	for _, node := range self.nodes {
		if node.Type == typ {
			ids.Add(node.Id)
		}
	}
	return ids
}

// EdgeBetween looks up the edge connecting a to b, checking the reverse
// direction for bidirectional edges.
func (self *MapModel) EdgeBetween(a, b string) (Edge, bool) {
	for _, edge := range self.edges {
		if edge.From == a && edge.To == b {
			return edge, true
		}
		if edge.Bidirectional && edge.From == b && edge.To == a {
			return edge, true
		}
	}
	return Edge{}, false
}

// ResolveLocation maps a node id or room-number string to a node id.
// Room numbers match case-insensitively against node metadata.
func (self *MapModel) ResolveLocation(location string) (string, bool) {
	if self.node_index.ContainsKey(location) {
		return location, true
	}
	for _, node := range self.nodes {
		if node.Meta.RoomNumber != "" && strings.EqualFold(node.Meta.RoomNumber, location) {
			return node.Id, true
		}
	}
	return "", false
}

//*******************************************
// alert snapshots
//*******************************************

// AffectedNodes collects node ids touched by any alert in the snapshot.
func (self *MapModel) AffectedNodes() Dict[string, bool] {
	affected := NewDict[string, bool](10)
	for _, alert := range self.alerts {
		for _, id := range alert.Nodes {
			affected[id] = true
		}
	}
	return affected
}

// AffectedEdges collects edge ids touched by any alert in the snapshot.
func (self *MapModel) AffectedEdges() Dict[string, bool] {
	affected := NewDict[string, bool](10)
	for _, alert := range self.alerts {
		for _, id := range alert.Edges {
			affected[id] = true
		}
	}
	return affected
}

// AlertsForNode returns every alert whose node set contains id, one entry
// per alert (alerts are not deduplicated).
func (self *MapModel) AlertsForNode(id string) List[Alert] {
	found := NewList[Alert](2)
	for _, alert := range self.alerts {
		for _, node_id := range alert.Nodes {
			if node_id == id {
				found.Add(alert)
				break
			}
		}
	}
	return found
}
