package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddNetworkOverwrites(t *testing.T) {
	r := NewRouter("A")
	r.AddNetwork("N1", 3)
	r.AddNetwork("N1", 7)
	r.AddNetwork("N1", 0)
	assert.Equal(t, RoutingTable{"N1": 0}, r.Table())
}

func TestAddNeighbourIdempotent(t *testing.T) {
	r := NewRouter("A")
	r.AddNeighbour("B")
	r.AddNeighbour("B")
	assert.Equal(t, []NodeId{"B"}, r.Neighbours())
}

func TestNeighboursSorted(t *testing.T) {
	r := NewRouter("A")
	r.AddNeighbour("D")
	r.AddNeighbour("B")
	r.AddNeighbour("C")
	assert.Equal(t, []NodeId{"B", "C", "D"}, r.Neighbours())
}

func TestSelfNeighbour(t *testing.T) {
	r := NewRouter("A")
	r.AddNeighbour("A")
	assert.Equal(t, []NodeId{"A"}, r.Neighbours())
}

func TestTableIsShared(t *testing.T) {
	r := NewRouter("A")
	tbl := r.Table()
	tbl["N1"] = 4
	assert.Equal(t, RouteStatus{Kind: RouteHops, Distance: 4}, r.HasRoute("N1"))
}

func TestHasRoute(t *testing.T) {
	r := NewRouter("A")
	r.AddNetwork("edge", 0)
	r.AddNetwork("far", 3)

	assert.Equal(t, RouteStatus{Kind: RouteEdge}, r.HasRoute("edge"))
	assert.Equal(t, RouteStatus{Kind: RouteHops, Distance: 3}, r.HasRoute("far"))
	assert.Equal(t, RouteStatus{Kind: RouteUnknown}, r.HasRoute("nowhere"))
	// queries do not create entries
	assert.Len(t, r.Table(), 2)
}

func TestRender(t *testing.T) {
	r := NewRouter("A")
	r.AddNeighbour("C")
	r.AddNeighbour("B")
	r.AddNetwork("net2", 1)
	r.AddNetwork("net1", 0)
	assert.Equal(t, "  A\n    N: B, C\n    R: net1:0, net2:1\n", r.Render())
}

func TestRenderEmpty(t *testing.T) {
	r := NewRouter("lonely")
	assert.Equal(t, "  lonely\n    N: \n    R: \n", r.Render())
}
