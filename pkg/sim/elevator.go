package sim

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Elevator holds the state of one elevator car. An elevator starts out
// Stopped at floor 1 heading up and from then on sweeps the shaft for as
// long as it is updated.
type Elevator struct {
	index        int
	speed        int // ticks to travel one floor
	stopDuration int // ticks spent stopping at a floor
	capacity     int

	floor     int
	direction Direction
	state     State
	timer     tickTimer

	onboard []*Passenger

	log zerolog.Logger
}

func NewElevator(index, speed, stopDuration int) (*Elevator, error) {
	if speed < 1 {
		return nil, fmt.Errorf("%w: elevator %d: speed %d", ErrInvalidConfig, index, speed)
	}
	if stopDuration < 1 {
		return nil, fmt.Errorf("%w: elevator %d: stop duration %d", ErrInvalidConfig, index, stopDuration)
	}
	return &Elevator{
		index:        index,
		speed:        speed,
		stopDuration: stopDuration,
		capacity:     Capacity,
		floor:        1,
		direction:    Up,
		state:        Stopped,
		log:          zerolog.Nop(),
	}, nil
}

func (e *Elevator) Index() int           { return e.index }
func (e *Elevator) Floor() int           { return e.floor }
func (e *Elevator) Direction() Direction { return e.direction }
func (e *Elevator) State() State         { return e.state }
func (e *Elevator) Load() int            { return len(e.onboard) }

func (e *Elevator) HasPassengers() bool {
	return len(e.onboard) > 0
}

// Update advances the elevator by one tick. floors is the building's
// floor list, floors[i] being floor i+1; the elevator only uses it for
// the duration of the call.
func (e *Elevator) Update(tick int, floors []*Floor) {
	top := len(floors)

	switch e.state {
	case Stopped:
		here := floors[e.floor-1]
		e.dischargePassengers(here, tick)

		if e.floor == 1 {
			e.direction = Up
		} else if e.floor == top {
			e.direction = Down
		}

		e.pickUpPassengers(here, tick)
		e.depart(tick, top)

	case Stopping:
		if e.timer.HasTimedOut(tick) {
			e.state = Stopped
			e.log.Debug().Int("tick", tick).Int("floor", e.floor).Msg("stopped")
		}

	case MovingUp, MovingDown:
		if !e.timer.HasTimedOut(tick) {
			return
		}
		if e.state == MovingUp {
			e.floor++
		} else {
			e.floor--
		}
		e.atFloor(tick, floors[e.floor-1], top)

	default:
		panic(fmt.Sprintf("elevator %d: undefined state %d", e.index, e.state))
	}
}

// depart leaves a serviced floor in the current direction of travel.
func (e *Elevator) depart(tick, top int) {
	switch {
	case e.direction == Up && e.floor < top:
		e.state = MovingUp
	case e.direction == Down && e.floor > 1:
		e.state = MovingDown
	default:
		// Single-floor shaft; nowhere to go.
		return
	}
	e.timer.Reset(tick, e.speed)
}

// atFloor decides what to do on reaching a floor while moving.
func (e *Elevator) atFloor(tick int, here *Floor, top int) {
	if e.shouldStop(here, top) {
		e.state = Stopping
		// The Stopped state needs one more tick to service the floor.
		e.timer.Reset(tick, e.stopDuration-1)
		e.log.Debug().Int("tick", tick).Int("floor", e.floor).Int("load", len(e.onboard)).Msg("stopping")
		return
	}

	switch {
	case e.state == MovingUp && e.floor == top:
		e.direction = Down
		e.state = MovingDown
		e.log.Debug().Int("tick", tick).Int("floor", e.floor).Msg("reversing down")
	case e.state == MovingDown && e.floor == 1:
		e.direction = Up
		e.state = MovingUp
		e.log.Debug().Int("tick", tick).Int("floor", e.floor).Msg("reversing up")
	}
	e.timer.Reset(tick, e.speed)
}

// departure is the direction the elevator will leave the current floor
// in if it stops here. At the ends of the shaft that is the reverse of
// the direction it arrived in.
func (e *Elevator) departure(top int) Direction {
	switch e.floor {
	case 1:
		return Up
	case top:
		return Down
	}
	return e.direction
}

func (e *Elevator) shouldStop(here *Floor, top int) bool {
	// Is this floor a destination?
	for _, p := range e.onboard {
		if p.Destination == here.Number() {
			return true
		}
	}

	// A full car only stops to let people off.
	if len(e.onboard) >= e.capacity {
		return false
	}

	// Is anybody waiting to go our way?
	return here.wants(e.departure(top))
}

func (e *Elevator) pickUpPassengers(here *Floor, tick int) {
	for _, p := range here.take(e.direction, e.capacity-len(e.onboard)) {
		p.board(tick)
		e.onboard = append(e.onboard, p)
		e.log.Debug().
			Int("tick", tick).
			Int("floor", e.floor).
			Int("passenger", p.ID).
			Int("wait", p.WaitTime).
			Msg("boarded")
	}
}

func (e *Elevator) dischargePassengers(here *Floor, tick int) {
	remaining := e.onboard[:0]
	for _, p := range e.onboard {
		if p.Destination != here.Number() {
			remaining = append(remaining, p)
			continue
		}
		p.discharge(tick)
		here.deliver(p)
		e.log.Debug().
			Int("tick", tick).
			Int("floor", e.floor).
			Int("passenger", p.ID).
			Int("travel", p.TravelTime).
			Msg("discharged")
	}
	for i := len(remaining); i < len(e.onboard); i++ {
		e.onboard[i] = nil
	}
	e.onboard = remaining
}
