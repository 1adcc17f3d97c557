package sim

// tickTimer is a deadline on the simulation clock. Unlike a wall-clock
// timer it cannot fire early or late: it has timed out exactly when the
// clock reaches the deadline.
type tickTimer struct {
	deadline int
}

// Reset moves the deadline to d ticks after now.
func (t *tickTimer) Reset(now, d int) {
	t.deadline = now + d
}

func (t *tickTimer) HasTimedOut(now int) bool {
	return now >= t.deadline
}

func (t *tickTimer) Deadline() int {
	return t.deadline
}
