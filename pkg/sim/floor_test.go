package sim

import (
	"errors"
	"testing"
)

func TestNewFloor(t *testing.T) {
	for _, n := range []int{0, 1, 50, 100} {
		if _, err := NewFloor(n); err != nil {
			t.Errorf("NewFloor(%d): %v", n, err)
		}
	}
	for _, n := range []int{-1, 101} {
		if _, err := NewFloor(n); !errors.Is(err, ErrInvalidFloor) {
			t.Errorf("NewFloor(%d) error = %v, want ErrInvalidFloor", n, err)
		}
	}
}

func mustPassenger(t *testing.T, id, tick, origin, destination int) *Passenger {
	t.Helper()
	p, err := NewPassenger(id, tick, origin, destination)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func ids(ps []*Passenger) []int {
	var out []int
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFloorTakeKeepsOrder(t *testing.T) {
	f, _ := NewFloor(3)
	f.AddWaiting(mustPassenger(t, 1, 0, 3, 5))
	f.AddWaiting(mustPassenger(t, 2, 0, 3, 1))
	f.AddWaiting(mustPassenger(t, 3, 0, 3, 6))
	f.AddWaiting(mustPassenger(t, 4, 0, 3, 2))
	f.AddWaiting(mustPassenger(t, 5, 0, 3, 9))

	if !f.wants(Up) || !f.wants(Down) {
		t.Fatalf("wants() missed a waiting passenger")
	}

	taken := f.take(Up, 2)
	if got := ids(taken); !equalInts(got, []int{1, 3}) {
		t.Errorf("take(Up, 2) = %v, want [1 3]", got)
	}
	if got := ids(f.Waiting()); !equalInts(got, []int{2, 4, 5}) {
		t.Errorf("waiting after take = %v, want [2 4 5]", got)
	}

	if taken := f.take(Down, 0); len(taken) != 0 {
		t.Errorf("take with zero limit took %v", ids(taken))
	}
	taken = f.take(Down, 8)
	if got := ids(taken); !equalInts(got, []int{2, 4}) {
		t.Errorf("take(Down, 8) = %v, want [2 4]", got)
	}
	if f.wants(Down) {
		t.Errorf("wants(Down) after taking every down passenger")
	}
}
