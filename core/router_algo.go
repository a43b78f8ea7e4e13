package core

import (
	"github.com/encodeous/hopsim/state"
)

type RouterEvent int

// trace events

const (
	RouteAdded RouterEvent = iota
	RouteIgnored
	TableSent
)

// warn events

const (
	NeighbourUnresolved RouterEvent = iota + 1000
)

func (e RouterEvent) String() string {
	switch e {
	case RouteAdded:
		return "ROUTE_ADDED"
	case RouteIgnored:
		return "ROUTE_IGNORED"
	case TableSent:
		return "TABLE_SENT"
	case NeighbourUnresolved:
		return "NEIGHBOUR_UNRESOLVED"
	default:
		return "UNKNOWN_EVENT"
	}
}

// Observer receives the events produced while routes propagate
type Observer interface {
	Log(event RouterEvent, desc string, args ...any)
}

// Advertise merges the routing table of sender into receiver. Every network the receiver has not
// heard of is added one hop further away than the sender has it. Networks the receiver already
// knows are left alone, even if the advertised distance is shorter: the first route heard wins.
// The receiver does not need to be a neighbour of the sender. Returns the number of routes added.
func Advertise(sender, receiver *state.Router, r Observer) int {
	table := receiver.Table()
	added := 0
	for _, route := range sender.SortedRoutes() {
		if old, ok := table[route.V1]; ok {
			r.Log(RouteIgnored, "receiver already has a route", "from", sender.Id, "to", receiver.Id, "network", route.V1, "distance", old)
			continue
		}
		table[route.V1] = AddHop(route.V2)
		added++
		r.Log(RouteAdded, "learned route", "from", sender.Id, "to", receiver.Id, "network", route.V1, "distance", table[route.V1])
	}
	return added
}

type SendResult struct {
	Sender     state.NodeId
	Reached    []state.NodeId
	Unresolved []state.NodeId
	Added      int
}

// Send advertises the table of the sender to each of its current neighbours, a single hop.
// Neighbours that are only known by name are skipped.
func Send(g *state.Registry, id state.NodeId, r Observer) (SendResult, error) {
	sender, err := g.Lookup(id)
	if err != nil {
		return SendResult{}, err
	}
	res := SendResult{Sender: id}
	for _, neigh := range sender.Neighbours() {
		receiver, err := g.Lookup(neigh)
		if err != nil {
			r.Log(NeighbourUnresolved, "neighbour is not a registered router", "from", id, "neighbour", neigh)
			res.Unresolved = append(res.Unresolved, neigh)
			continue
		}
		res.Added += Advertise(sender, receiver, r)
		res.Reached = append(res.Reached, neigh)
	}
	r.Log(TableSent, "sent routing table", "from", id, "reached", len(res.Reached), "added", res.Added)
	return res, nil
}

// QueryRoute reports how router id reaches address
func QueryRoute(g *state.Registry, id state.NodeId, address string) (state.RouteStatus, error) {
	router, err := g.Lookup(id)
	if err != nil {
		return state.RouteStatus{}, err
	}
	return router.HasRoute(address), nil
}
