package main

import (
	"fmt"
	"io"

	"github.com/jerryland3/ElevatorSimulation/pkg/sim"
)

// writeReport prints the summary of one simulated building.
func writeReport(w io.Writer, n int, name string, res *sim.Result) error {
	_, err := fmt.Fprintf(w, `Building %d: %s
Average wait time: %.2f
Average travel time: %.2f
Wait time std dev: %.2f
Travel time std dev: %.2f

Total passengers: %d
Delivered passengers: %d
`,
		n, name,
		res.AverageWait(),
		res.AverageTravel(),
		res.WaitTime.StdDev(),
		res.TravelTime.StdDev(),
		res.TotalPassengers,
		res.DeliveredPassengers)
	return err
}
