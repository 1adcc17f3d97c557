package sim

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jerryland3/ElevatorSimulation/pkg/queue"
	"github.com/jerryland3/ElevatorSimulation/pkg/stats"
)

// Config describes a building and its elevators.
type Config struct {
	Floors       int
	Elevators    int
	Speed        int // ticks to travel one floor
	StopDuration int // ticks to stop at a floor

	// ActivationOffsets[i] is the first tick at which elevator i is
	// updated. Missing entries default to 0.
	ActivationOffsets []int

	// MaxTicks stops Run with ErrTickLimit once the clock reaches it.
	// Zero means no limit.
	MaxTicks int
}

func (c Config) Validate() error {
	switch {
	case c.Floors < 2 || c.Floors > MaxFloor:
		return fmt.Errorf("%w: %d floors, need 2 to %d", ErrInvalidConfig, c.Floors, MaxFloor)
	case c.Elevators < 1:
		return fmt.Errorf("%w: %d elevators", ErrInvalidConfig, c.Elevators)
	case c.Speed < 1:
		return fmt.Errorf("%w: speed %d", ErrInvalidConfig, c.Speed)
	case c.StopDuration < 1:
		return fmt.Errorf("%w: stop duration %d", ErrInvalidConfig, c.StopDuration)
	case len(c.ActivationOffsets) > c.Elevators:
		return fmt.Errorf("%w: %d activation offsets for %d elevators",
			ErrInvalidConfig, len(c.ActivationOffsets), c.Elevators)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max ticks %d", ErrInvalidConfig, c.MaxTicks)
	}
	for i, off := range c.ActivationOffsets {
		if off < 0 {
			return fmt.Errorf("%w: elevator %d activation offset %d", ErrInvalidConfig, i, off)
		}
	}
	return nil
}

func (c Config) activationOffset(elevator int) int {
	if elevator < len(c.ActivationOffsets) {
		return c.ActivationOffsets[elevator]
	}
	return 0
}

// Building owns the clock, the floors, the elevators and the passengers
// that have not arrived yet.
type Building struct {
	config    Config
	floors    []*Floor
	elevators []*Elevator
	arrivals  *queue.Queue[*Passenger]
	total     int
	clock     int

	runID uuid.UUID
	log   zerolog.Logger
}

type Option func(*Building)

// WithLogger sets the logger receiving the activity log of the run.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Building) {
		b.log = log
	}
}

// WithRunID overrides the randomly generated id of the run.
func WithRunID(id uuid.UUID) Option {
	return func(b *Building) {
		b.runID = id
	}
}

// NewBuilding validates config and creates a passenger for every arrival,
// numbered from 1 in feed order. The arrivals must be sorted by tick.
func NewBuilding(config Config, arrivals []Arrival, opts ...Option) (*Building, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &Building{
		config:   config,
		arrivals: queue.New[*Passenger](),
		runID:    uuid.New(),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With().Str("run", b.runID.String()).Logger()

	for i := 0; i < config.Floors; i++ {
		f, err := NewFloor(i + 1)
		if err != nil {
			return nil, err
		}
		b.floors = append(b.floors, f)
	}

	for i := 0; i < config.Elevators; i++ {
		e, err := NewElevator(i, config.Speed, config.StopDuration)
		if err != nil {
			return nil, err
		}
		e.log = b.log.With().Int("elevator", i).Logger()
		b.elevators = append(b.elevators, e)
	}

	prev := 0
	for i, a := range arrivals {
		p, err := NewPassenger(i+1, a.Tick, a.Origin, a.Destination)
		if err != nil {
			return nil, err
		}
		if p.Origin > config.Floors || p.Destination > config.Floors {
			return nil, fmt.Errorf("passenger %d: %w: %d -> %d in a %d floor building",
				p.ID, ErrInvalidFloor, p.Origin, p.Destination, config.Floors)
		}
		if p.ArrivalTick < prev {
			return nil, fmt.Errorf("passenger %d: %w: tick %d after tick %d",
				p.ID, ErrUnsortedFeed, p.ArrivalTick, prev)
		}
		prev = p.ArrivalTick
		b.arrivals.Push(p)
	}
	b.total = len(arrivals)

	return b, nil
}

func (b *Building) RunID() uuid.UUID     { return b.runID }
func (b *Building) Config() Config       { return b.config }
func (b *Building) Clock() int           { return b.clock }
func (b *Building) Floors() []*Floor     { return b.floors }
func (b *Building) TotalPassengers() int { return b.total }

// Step simulates one tick.
func (b *Building) Step() {
	for {
		p, ok := b.arrivals.Peek()
		if !ok || p.ArrivalTick != b.clock {
			break
		}
		b.arrivals.Pop()
		b.floors[p.Origin-1].AddWaiting(p)
		b.log.Debug().
			Int("tick", b.clock).
			Int("floor", p.Origin).
			Int("passenger", p.ID).
			Int("destination", p.Destination).
			Msg("arrived")
	}

	for i, e := range b.elevators {
		if b.clock < b.config.activationOffset(i) {
			continue
		}
		e.Update(b.clock, b.floors)
	}

	b.clock++
}

// Done reports whether every passenger has been delivered: nobody is
// waiting on a floor, no elevator carries anybody and nobody is yet to
// arrive.
func (b *Building) Done() bool {
	for _, f := range b.floors {
		if f.HasWaiting() {
			return false
		}
	}
	for _, e := range b.elevators {
		if e.HasPassengers() {
			return false
		}
	}
	return b.arrivals.Empty()
}

// Run steps the simulation until every passenger is delivered and then
// checks that nobody went missing.
func (b *Building) Run() (Result, error) {
	b.log.Info().
		Int("floors", b.config.Floors).
		Int("elevators", b.config.Elevators).
		Int("speed", b.config.Speed).
		Int("passengers", b.total).
		Msg("simulation started")

	for !b.Done() {
		if b.config.MaxTicks > 0 && b.clock >= b.config.MaxTicks {
			return b.Result(), fmt.Errorf("%w: %d ticks", ErrTickLimit, b.clock)
		}
		b.Step()
	}

	res := b.Result()
	if res.DeliveredPassengers != res.TotalPassengers {
		return res, fmt.Errorf("%w: constructed %d, delivered %d",
			ErrPassengerMismatch, res.TotalPassengers, res.DeliveredPassengers)
	}

	b.log.Info().
		Int("ticks", res.Ticks).
		Float64("wait", res.AverageWait()).
		Float64("travel", res.AverageTravel()).
		Msg("simulation finished")
	return res, nil
}

// Delivered returns every delivered passenger, floor by floor.
func (b *Building) Delivered() []*Passenger {
	var ps []*Passenger
	for _, f := range b.floors {
		ps = append(ps, f.Delivered()...)
	}
	return ps
}

// Result summarises the passengers delivered so far.
func (b *Building) Result() Result {
	res := Result{
		RunID:           b.runID,
		Ticks:           b.clock,
		TotalPassengers: b.total,
	}
	for _, p := range b.Delivered() {
		res.WaitTime.Add(p.WaitTime)
		res.TravelTime.Add(p.TravelTime)
		res.DeliveredPassengers++
	}
	return res
}

type Result struct {
	RunID               uuid.UUID
	Ticks               int
	TotalPassengers     int
	DeliveredPassengers int
	WaitTime            stats.Statistic
	TravelTime          stats.Statistic
}

// AverageWait is NaN when nobody has been delivered.
func (r *Result) AverageWait() float64 {
	return r.WaitTime.Mean()
}

// AverageTravel is NaN when nobody has been delivered.
func (r *Result) AverageTravel() float64 {
	return r.TravelTime.Mean()
}
