package routing

import (
	"github.com/roomroute/indoornav/building"
	. "github.com/roomroute/indoornav/util"
)

//*******************************************
// adjacency
//*******************************************

type GraphEdge struct {
	EdgeId     string
	To         string
	Distance   float64
	Type       building.EdgeType
	Accessible bool
	Closed     bool
}

type Adjacency Dict[string, List[GraphEdge]]

//*******************************************
// graph builder
//*******************************************

// BuildGraph turns the map snapshot into a directed adjacency structure.
//
// Every node gets an entry, dead ends keep an empty list. Edges touched
// by an alert, marked closed in their metadata or flagged inaccessible
// carry Closed=true. With AvoidStairs set, stairs edges are left out of
// the graph entirely.
func BuildGraph(m *building.MapModel, prefs Preferences) Adjacency {
	affected := m.AffectedEdges()

	adjacency := NewDict[string, List[GraphEdge]](m.NodeCount())
	for i := 0; i < m.NodeCount(); i++ {
		adjacency[m.GetNodeAt(i).Id] = NewList[GraphEdge](2)
	}

	for _, edge := range m.Edges() {
		if prefs.AvoidStairs && edge.Type == building.EDGE_STAIRS {
			continue
		}
		closed := affected.ContainsKey(edge.Id) || edge.Meta.Closed || !edge.Accessible

		forward := adjacency[edge.From]
		forward.Add(GraphEdge{
			EdgeId:     edge.Id,
			To:         edge.To,
			Distance:   edge.Distance,
			Type:       edge.Type,
			Accessible: edge.Accessible,
			Closed:     closed,
		})
		adjacency[edge.From] = forward

		if edge.Bidirectional {
			backward := adjacency[edge.To]
			backward.Add(GraphEdge{
				EdgeId:     edge.Id,
				To:         edge.From,
				Distance:   edge.Distance,
				Type:       edge.Type,
				Accessible: edge.Accessible,
				Closed:     closed,
			})
			adjacency[edge.To] = backward
		}
	}
	return Adjacency(adjacency)
}
