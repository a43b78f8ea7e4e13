package core

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/encodeous/hopsim/state"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type HarnessEvent struct {
	Message string
	Args    []any
}

// MakeEvent keeps only the values of the key value pairs passed to Observer.Log
func MakeEvent(msg string, kv ...any) HarnessEvent {
	args := make([]any, 0, len(kv)/2)
	for i := 1; i < len(kv); i += 2 {
		args = append(args, kv[i])
	}
	return HarnessEvent{
		Message: msg,
		Args:    args,
	}
}

type RouterHarness struct {
	actions []HarnessEvent
}

func (h *RouterHarness) Log(event RouterEvent, desc string, args ...any) {
	h.actions = append(h.actions, MakeEvent(event.String(), args...))
}

type HarnessEvents []HarnessEvent

func (h HarnessEvents) String() string {
	out := make([]string, 0)
	for _, action := range h {
		cur := action.Message
		for _, arg := range action.Args {
			cur += " " + fmt.Sprint(arg)
		}
		out = append(out, cur)
	}
	slices.Sort(out)
	return strings.Join(out, "\n")
}

// GetActions returns the recorded events, leaving out TABLE_SENT summaries, and clears the log
func (h *RouterHarness) GetActions() HarnessEvents {
	x := make([]HarnessEvent, 0)
	for _, action := range h.actions {
		if action.Message != TableSent.String() {
			x = append(x, action)
		}
	}

	h.actions = make([]HarnessEvent, 0)
	return x
}

func (e HarnessEvents) contains(msg string, args ...any) bool {
	for _, event := range e {
		if event.Message == msg {
			if len(event.Args) >= len(args) {
				match := true
				for i, arg := range args {
					if !cmp.Equal(event.Args[i], arg) {
						match = false
						break
					}
				}
				if match {
					return true
				}
			}
		}
	}
	return false
}

func (e HarnessEvents) AssertContains(t *testing.T, msg string, args ...any) {
	if e.contains(msg, args...) {
		return
	}
	t.Fatal("Expected event not found: ", msg, " with args: ", args, " in ", e)
}

func (e HarnessEvents) AssertNotContains(t *testing.T, msg string, args ...any) {
	if e.contains(msg, args...) {
		t.Fatal("Unexpected event found: ", msg, " with args: ", args, " in ", e)
	}
}

// MakeRegistry builds a registry from the line format
func MakeRegistry(t *testing.T, topology string) *state.Registry {
	cfg, err := state.ParseTopology(strings.NewReader(topology))
	require.NoError(t, err)
	reg, err := state.BuildRegistry(cfg)
	require.NoError(t, err)
	return reg
}

func MustLookup(t *testing.T, g *state.Registry, id state.NodeId) *state.Router {
	r, err := g.Lookup(id)
	require.NoError(t, err)
	return r
}
