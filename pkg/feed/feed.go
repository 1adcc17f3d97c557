// Package feed reads passenger arrival records.
//
// A feed is a comma separated text file with a header line followed by
// one record per line:
//
//	time,start_floor,end_floor
//	0,2,5
//	12,9,1
//
// Whitespace around fields and blank lines are ignored.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jerryland3/ElevatorSimulation/pkg/sim"
)

var ErrMalformedRecord = errors.New("malformed arrival record")

// Read parses a feed and returns its records sorted by arrival tick.
// Records with the same tick keep their order in the feed.
func Read(r io.Reader) ([]sim.Arrival, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var arrivals []sim.Arrival
	header := true
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already names the line.
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: %d fields, want 3", line, ErrMalformedRecord, len(fields))
		}

		var v [3]int
		for i, f := range fields {
			v[i], err = strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: %q is not a number", line, ErrMalformedRecord, f)
			}
		}
		arrivals = append(arrivals, sim.Arrival{Tick: v[0], Origin: v[1], Destination: v[2]})
	}

	sort.SliceStable(arrivals, func(i, j int) bool {
		return arrivals[i].Tick < arrivals[j].Tick
	})
	return arrivals, nil
}

func ReadFile(filename string) ([]sim.Arrival, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	arrivals, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return arrivals, nil
}
