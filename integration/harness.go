//go:build integration

package integration

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/encodeous/hopsim/core"
	"github.com/encodeous/hopsim/state"
)

// VirtualHarness builds a topology, writes it to disk and drives a full simulation with a
// scripted command list.
type VirtualHarness struct {
	Central  state.TopologyCfg
	Commands []string
	Format   string
}

func (vh *VirtualHarness) node(id state.NodeId) *state.RouterCfg {
	idx := slices.IndexFunc(vh.Central.Routers, func(cfg state.RouterCfg) bool {
		return cfg.Id == id
	})
	if idx == -1 {
		return nil
	}
	return &vh.Central.Routers[idx]
}

// NewNode declares a router that originates every network passed to it
func (vh *VirtualHarness) NewNode(id state.NodeId, networks ...string) {
	cfg := state.RouterCfg{Id: id}
	for _, n := range networks {
		cfg.Networks = append(cfg.Networks, state.NetworkCfg{Address: n})
	}
	vh.Central.Routers = append(vh.Central.Routers, cfg)
}

// AddLink declares a and b as neighbours of each other
func (vh *VirtualHarness) AddLink(a, b state.NodeId) {
	for _, pair := range []state.Pair[state.NodeId, state.NodeId]{{V1: a, V2: b}, {V1: b, V2: a}} {
		n := vh.node(pair.V1)
		if n != nil && !slices.Contains(n.Neighbours, pair.V2) {
			n.Neighbours = append(n.Neighbours, pair.V2)
		}
	}
}

func (vh *VirtualHarness) Send(ids ...state.NodeId) {
	for _, id := range ids {
		vh.Commands = append(vh.Commands, "S", string(id))
	}
}

func (vh *VirtualHarness) Query(id state.NodeId, network string) {
	vh.Commands = append(vh.Commands, "RR", string(id), network)
}

func (vh *VirtualHarness) Print(id state.NodeId) {
	vh.Commands = append(vh.Commands, "P", string(id))
}

// FloodOrder lists routers breadth first from origin, the order in which an operator has to send
// for every router to learn the shortest distance to the networks of origin.
func (vh *VirtualHarness) FloodOrder(origin state.NodeId) []state.NodeId {
	order := []state.NodeId{origin}
	seen := map[state.NodeId]bool{origin: true}
	for i := 0; i < len(order); i++ {
		n := vh.node(order[i])
		if n == nil {
			continue
		}
		for _, neigh := range n.Neighbours {
			if !seen[neigh] {
				seen[neigh] = true
				order = append(order, neigh)
			}
		}
	}
	return order
}

// Run writes the topology and runs the commands, followed by Q. Returns the session output.
func (vh *VirtualHarness) Run(t *testing.T) string {
	ext := vh.Format
	if ext == "" {
		ext = ".yaml"
	}
	path := filepath.Join(t.TempDir(), "topology"+ext)
	if err := state.WriteTopology(path, &vh.Central); err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	cfg := core.SimCfg{
		TopologyPath: path,
		LogLevel:     slog.LevelDebug,
		In:           strings.NewReader(strings.Join(append(vh.Commands, "Q"), "\n") + "\n"),
		Out:          out,
		LogOut:       io.Discard,
	}
	if err := core.Start(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	return out.String()
}
