package state

import (
	"context"
	"log/slog"
)

// State access must be done only on the main loop goroutine
type State struct {
	*Env
	*Registry
}

// Env can be read from any Goroutine
type Env struct {
	DispatchChannel chan<- func(s *State) error
	Context         context.Context
	Cancel          context.CancelCauseFunc
	Log             *slog.Logger
}
