package sim

import "fmt"

// Arrival is a raw trip request as read from the arrival feed.
type Arrival struct {
	Tick        int
	Origin      int
	Destination int
}

// Passenger is a trip request together with its timing outcome. The
// trip fields never change after NewPassenger; WaitTime is set when the
// passenger boards and TravelTime when the passenger is discharged.
type Passenger struct {
	ID          int
	ArrivalTick int
	Origin      int
	Destination int
	Direction   Direction

	WaitTime   int
	TravelTime int
}

func NewPassenger(id, arrivalTick, origin, destination int) (*Passenger, error) {
	if arrivalTick < 0 {
		return nil, fmt.Errorf("passenger %d: %w: %d", id, ErrInvalidArrival, arrivalTick)
	}
	if origin < 1 || origin > MaxFloor || destination < 1 || destination > MaxFloor {
		return nil, fmt.Errorf("passenger %d: %w: %d -> %d", id, ErrInvalidFloor, origin, destination)
	}
	if origin == destination {
		return nil, fmt.Errorf("passenger %d: %w: %d", id, ErrSameFloor, origin)
	}

	dir := Down
	if origin < destination {
		dir = Up
	}
	return &Passenger{
		ID:          id,
		ArrivalTick: arrivalTick,
		Origin:      origin,
		Destination: destination,
		Direction:   dir,
	}, nil
}

// DischargeTick is the tick at which the passenger reached the
// destination floor. Only meaningful once the passenger is delivered.
func (p *Passenger) DischargeTick() int {
	return p.ArrivalTick + p.WaitTime + p.TravelTime
}

func (p *Passenger) String() string {
	return fmt.Sprintf("passenger %d (%d -> %d, %v, arrived %d)",
		p.ID, p.Origin, p.Destination, p.Direction, p.ArrivalTick)
}

func (p *Passenger) board(tick int) {
	p.WaitTime = tick - p.ArrivalTick
}

func (p *Passenger) discharge(tick int) {
	p.TravelTime = tick - (p.ArrivalTick + p.WaitTime)
}
