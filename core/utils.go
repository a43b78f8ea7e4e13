package core

import (
	"github.com/encodeous/hopsim/state"
)

// AddHop adds the hop cost to d, saturating at state.MaxDistance
func AddHop(d state.Distance) state.Distance {
	if d >= state.MaxDistance-state.HopCost {
		return state.MaxDistance
	}
	return d + state.HopCost
}
