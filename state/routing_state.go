package state

import "fmt"

// Registry maps router names to the single Router instance owned by the simulation.
type Registry struct {
	routers map[NodeId]*Router
	order   []NodeId
}

func NewRegistry() *Registry {
	return &Registry{
		routers: make(map[NodeId]*Router),
		order:   make([]NodeId, 0),
	}
}

func (g *Registry) Register(id NodeId) (*Router, error) {
	if _, ok := g.routers[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrNameConflict, id)
	}
	r := NewRouter(id)
	g.routers[id] = r
	g.order = append(g.order, id)
	return r, nil
}

func (g *Registry) Lookup(id NodeId) (*Router, error) {
	r, ok := g.routers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return r, nil
}

func (g *Registry) Has(id NodeId) bool {
	_, ok := g.routers[id]
	return ok
}

// Connect links a and b as neighbours of each other. Both must be registered.
func (g *Registry) Connect(a, b NodeId) error {
	ra, err := g.Lookup(a)
	if err != nil {
		return err
	}
	rb, err := g.Lookup(b)
	if err != nil {
		return err
	}
	ra.AddNeighbour(b)
	rb.AddNeighbour(a)
	return nil
}

// Routers returns every router in registration order
func (g *Registry) Routers() []*Router {
	routers := make([]*Router, 0, len(g.order))
	for _, id := range g.order {
		routers = append(routers, g.routers[id])
	}
	return routers
}

func (g *Registry) Len() int {
	return len(g.order)
}
