package sim

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Status is a point-in-time copy of an elevator. Nothing in it aliases
// the running simulation.
type Status struct {
	Index      int
	Floor      int
	Direction  Direction
	State      State
	NextAction int
	Onboard    []*Passenger
}

func (e *Elevator) status() Status {
	return Status{
		Index:      e.index,
		Floor:      e.floor,
		Direction:  e.direction,
		State:      e.state,
		NextAction: e.timer.Deadline(),
		Onboard:    e.onboard,
	}
}

// Snapshot returns a deep copy of the state of every elevator, in index
// order.
func (b *Building) Snapshot() ([]Status, error) {
	live := make([]Status, 0, len(b.elevators))
	for _, e := range b.elevators {
		live = append(live, e.status())
	}

	var snap []Status
	if err := deepcopy.Copy(&snap, &live); err != nil {
		return nil, fmt.Errorf("copying elevator state: %w", err)
	}
	return snap, nil
}
