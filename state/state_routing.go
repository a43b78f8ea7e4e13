package state

import "fmt"

type RouteKind int

const (
	RouteUnknown RouteKind = iota
	RouteEdge
	RouteHops
)

func (k RouteKind) String() string {
	switch k {
	case RouteUnknown:
		return "unknown"
	case RouteEdge:
		return "edge"
	case RouteHops:
		return "hops"
	default:
		return fmt.Sprintf("RouteKind(%d)", int(k))
	}
}

// RouteStatus is the answer to a route query. Distance is only meaningful for RouteHops.
type RouteStatus struct {
	Kind     RouteKind
	Distance Distance
}

func (r RouteStatus) String() string {
	if r.Kind == RouteHops {
		return fmt.Sprintf("distance=%d", r.Distance)
	}
	return r.Kind.String()
}
