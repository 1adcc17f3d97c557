package sim

import "fmt"

// Floor holds the passengers waiting on a floor, in arrival order, and
// the passengers delivered to it, in discharge order.
type Floor struct {
	number    int
	waiting   []*Passenger
	delivered []*Passenger
}

func NewFloor(number int) (*Floor, error) {
	if number < 0 || number > MaxFloor {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFloor, number)
	}
	return &Floor{number: number}, nil
}

func (f *Floor) Number() int {
	return f.number
}

func (f *Floor) AddWaiting(p *Passenger) {
	f.waiting = append(f.waiting, p)
}

func (f *Floor) HasWaiting() bool {
	return len(f.waiting) > 0
}

// Waiting returns the waiting passengers in arrival order. The slice must
// not be modified.
func (f *Floor) Waiting() []*Passenger {
	return f.waiting
}

// Delivered returns the passengers discharged at this floor in discharge
// order. The slice must not be modified.
func (f *Floor) Delivered() []*Passenger {
	return f.delivered
}

// wants reports whether anyone waiting here wants to travel in dir.
func (f *Floor) wants(dir Direction) bool {
	for _, p := range f.waiting {
		if p.Direction == dir {
			return true
		}
	}
	return false
}

// take removes up to limit waiting passengers travelling in dir, in
// arrival order, and returns them. Everybody else keeps their place in
// the queue.
func (f *Floor) take(dir Direction, limit int) []*Passenger {
	if limit <= 0 {
		return nil
	}
	var taken []*Passenger
	remaining := make([]*Passenger, 0, len(f.waiting))
	for _, p := range f.waiting {
		if p.Direction == dir && len(taken) < limit {
			taken = append(taken, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	f.waiting = remaining
	return taken
}

func (f *Floor) deliver(p *Passenger) {
	f.delivered = append(f.delivered, p)
}
