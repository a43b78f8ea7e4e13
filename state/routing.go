package state

import (
	"maps"
	"slices"
	"strings"
)

type NodeId string

// Distance is the hop count to a network. Zero means the router originates the network.
type Distance uint32

// RoutingTable maps a network address to its hop distance.
type RoutingTable map[string]Distance

// Router is a named node in the simulated topology. Neighbours are referenced by name only,
// they do not need to be registered.
type Router struct {
	Id         NodeId
	neighbours map[NodeId]struct{}
	table      RoutingTable
}

func NewRouter(id NodeId) *Router {
	return &Router{
		Id:         id,
		neighbours: make(map[NodeId]struct{}),
		table:      make(RoutingTable),
	}
}

func (r *Router) AddNeighbour(id NodeId) {
	r.neighbours[id] = struct{}{}
}

// Neighbours returns the neighbour names in sorted order
func (r *Router) Neighbours() []NodeId {
	return slices.Sorted(maps.Keys(r.neighbours))
}

// AddNetwork sets the distance to address, replacing any previous value.
func (r *Router) AddNetwork(address string, distance Distance) {
	r.table[address] = distance
}

// Table returns the live routing table. Writes to it are visible to every holder of r.
func (r *Router) Table() RoutingTable {
	return r.table
}

func (r *Router) HasRoute(address string) RouteStatus {
	distance, ok := r.table[address]
	switch {
	case !ok:
		return RouteStatus{Kind: RouteUnknown}
	case distance == 0:
		return RouteStatus{Kind: RouteEdge}
	default:
		return RouteStatus{Kind: RouteHops, Distance: distance}
	}
}

// SortedRoutes returns the table as (address, distance) pairs ordered by address
func (r *Router) SortedRoutes() []Pair[string, Distance] {
	routes := make([]Pair[string, Distance], 0, len(r.table))
	for address, distance := range r.table {
		routes = append(routes, Pair[string, Distance]{address, distance})
	}
	SortPairs(routes)
	return routes
}

// Render produces the printable summary of the router: its name, the sorted neighbour list
// and the routing table as address:distance pairs sorted by address.
func (r *Router) Render() string {
	sb := strings.Builder{}
	sb.WriteString("  " + string(r.Id) + "\n")

	neighbours := make([]string, 0, len(r.neighbours))
	for _, n := range r.Neighbours() {
		neighbours = append(neighbours, string(n))
	}
	sb.WriteString("    N: " + strings.Join(neighbours, ", ") + "\n")

	routes := make([]string, 0, len(r.table))
	for _, route := range r.SortedRoutes() {
		routes = append(routes, route.Join(":"))
	}
	sb.WriteString("    R: " + strings.Join(routes, ", ") + "\n")
	return sb.String()
}
