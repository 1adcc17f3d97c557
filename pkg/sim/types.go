// Package sim simulates elevator dispatch in a building over discrete
// one-second ticks.
//
// A Building owns the clock, the floors and the elevators. Every tick it
// releases the passengers arriving at that tick onto their origin floor,
// lets each activated elevator take one step of its state machine and
// advances the clock. Dispatch is local to each elevator: an elevator
// sweeps up and down the shaft and stops for its own passengers and for
// passengers waiting to travel in its direction of motion.
package sim

import "errors"

const (
	// MaxFloor is the highest floor number any building may have.
	MaxFloor = 100

	// Capacity is the number of passengers an elevator can carry.
	Capacity = 8
)

var (
	ErrInvalidFloor      = errors.New("invalid floor number")
	ErrSameFloor         = errors.New("origin and destination floor are the same")
	ErrInvalidArrival    = errors.New("invalid arrival tick")
	ErrInvalidConfig     = errors.New("invalid building configuration")
	ErrUnsortedFeed      = errors.New("arrival feed is not sorted by tick")
	ErrTickLimit         = errors.New("tick limit reached before all passengers were delivered")
	ErrPassengerMismatch = errors.New("delivered passengers do not match constructed passengers")
)

type Direction int

const (
	Down Direction = -1
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return -d
}

type State int

const (
	Stopped State = iota
	Stopping
	MovingUp
	MovingDown
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Stopping:
		return "Stopping"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	default:
		return "Undefined"
	}
}
