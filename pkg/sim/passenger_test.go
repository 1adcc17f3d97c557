package sim

import (
	"errors"
	"testing"
)

func TestNewPassenger(t *testing.T) {
	tests := []struct {
		name        string
		tick        int
		origin      int
		destination int
		dir         Direction
		err         error
	}{
		{"up", 0, 2, 5, Up, nil},
		{"down", 10, 5, 1, Down, nil},
		{"top floor", 3, 100, 1, Down, nil},
		{"origin below range", 0, 0, 5, 0, ErrInvalidFloor},
		{"destination above range", 0, 1, 101, 0, ErrInvalidFloor},
		{"same floor", 0, 4, 4, 0, ErrSameFloor},
		{"negative tick", -1, 1, 2, 0, ErrInvalidArrival},
	}

	for _, tt := range tests {
		p, err := NewPassenger(1, tt.tick, tt.origin, tt.destination)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%s: error = %v, want %v", tt.name, err, tt.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if p.Direction != tt.dir {
			t.Errorf("%s: direction = %v, want %v", tt.name, p.Direction, tt.dir)
		}
		if p.WaitTime != 0 || p.TravelTime != 0 {
			t.Errorf("%s: timing not zero before boarding: %d/%d", tt.name, p.WaitTime, p.TravelTime)
		}
	}
}

func TestPassengerTiming(t *testing.T) {
	p, err := NewPassenger(7, 10, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	p.board(14)
	p.discharge(25)
	if p.WaitTime != 4 {
		t.Errorf("WaitTime = %d, want 4", p.WaitTime)
	}
	if p.TravelTime != 11 {
		t.Errorf("TravelTime = %d, want 11", p.TravelTime)
	}
	if p.DischargeTick() != 25 {
		t.Errorf("DischargeTick() = %d, want 25", p.DischargeTick())
	}
}
