package state

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type NetworkCfg struct {
	Address  string
	Distance Distance
}

// RouterCfg declares a router, its neighbours and the networks it owns directly
type RouterCfg struct {
	Id         NodeId
	Neighbours []NodeId     `yaml:",omitempty"`
	Networks   []NetworkCfg `yaml:",omitempty"`
}

type TopologyCfg struct {
	Routers []RouterCfg
}

/*
ParseTopology reads the line format, one router per line:

	name!neighbour1;neighbour2!address:distance

The neighbour list and the network may be empty, so "A!!" is a router with nothing attached.
Any line that does not have exactly three '!' separated fields, or whose distance is not a
non-negative integer, makes the whole topology invalid. Blank lines are skipped.
*/
func ParseTopology(r io.Reader) (*TopologyCfg, error) {
	cfg := &TopologyCfg{Routers: make([]RouterCfg, 0)}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		router, err := parseRouterLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		cfg.Routers = append(cfg.Routers, router)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo+1, err)
	}
	if err := TopologyValidator(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseRouterLine(line string) (RouterCfg, error) {
	// the separators must all sit in the first whitespace delimited token
	first := strings.Fields(line)[0]
	if strings.Count(first, "!") != 2 || strings.Count(line, "!") != 2 {
		return RouterCfg{}, fmt.Errorf("expected 3 fields separated by '!', got %q", line)
	}
	fields := strings.Split(line, "!")

	router := RouterCfg{Id: NodeId(fields[0])}

	for _, neigh := range strings.Split(fields[1], ";") {
		neigh = strings.TrimSpace(neigh)
		if neigh == "" {
			continue
		}
		router.Neighbours = append(router.Neighbours, NodeId(neigh))
	}

	network := make([]string, 0, 2)
	for _, part := range strings.Split(fields[2], ":") {
		part = strings.TrimSpace(part)
		if part != "" {
			network = append(network, part)
		}
	}
	switch len(network) {
	case 0:
	case 2:
		distance, err := ParseDistance(network[1])
		if err != nil {
			return RouterCfg{}, err
		}
		router.Networks = append(router.Networks, NetworkCfg{Address: network[0], Distance: distance})
	default:
		return RouterCfg{}, fmt.Errorf("expected network as address:distance, got %q", fields[2])
	}
	return router, nil
}

// WriteText writes cfg in the line format read by ParseTopology.
func (c *TopologyCfg) WriteText(w io.Writer) error {
	for _, router := range c.Routers {
		if len(router.Networks) > 1 {
			return fmt.Errorf("router %s owns %d networks, the line format holds at most one", router.Id, len(router.Networks))
		}
		neighbours := make([]string, 0, len(router.Neighbours))
		for _, n := range router.Neighbours {
			neighbours = append(neighbours, string(n))
		}
		network := ""
		if len(router.Networks) == 1 {
			network = Pair[string, Distance]{router.Networks[0].Address, router.Networks[0].Distance}.Join(":")
		}
		_, err := fmt.Fprintf(w, "%s!%s!%s\n", router.Id, strings.Join(neighbours, ";"), network)
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildRegistry materializes cfg. Either the whole topology is loaded or an error is returned.
func BuildRegistry(cfg *TopologyCfg) (*Registry, error) {
	if err := TopologyValidator(cfg); err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, rc := range cfg.Routers {
		router, err := reg.Register(rc.Id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		for _, neigh := range rc.Neighbours {
			router.AddNeighbour(neigh)
		}
		for _, network := range rc.Networks {
			router.AddNetwork(network.Address, network.Distance)
		}
	}
	return reg, nil
}

// ExportTopology is the inverse of BuildRegistry
func ExportTopology(reg *Registry) *TopologyCfg {
	cfg := &TopologyCfg{Routers: make([]RouterCfg, 0, reg.Len())}
	for _, router := range reg.Routers() {
		rc := RouterCfg{Id: router.Id, Neighbours: router.Neighbours()}
		for _, route := range router.SortedRoutes() {
			rc.Networks = append(rc.Networks, NetworkCfg{Address: route.V1, Distance: route.V2})
		}
		cfg.Routers = append(cfg.Routers, rc)
	}
	return cfg
}
