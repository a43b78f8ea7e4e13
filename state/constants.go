package state

import "math"

const (
	// MaxDistance is the largest representable distance, advertisement saturates here.
	MaxDistance = Distance(math.MaxUint32)
)

var (
	HopCost = Distance(1)

	DispatchQueueSize = 128

	DefaultPrompt    = "> "
	DefaultDebugAddr = "127.0.0.1:6060"
)

// debug flags, set from the command line

var (
	DBG_debug      = false // serve expvar metrics on DebugAddr
	DBG_log_router = false // log router events at info instead of debug
	DebugAddr      = DefaultDebugAddr
)
