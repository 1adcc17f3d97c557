package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jerryland3/ElevatorSimulation/pkg/sim"
)

func TestWriteReport(t *testing.T) {
	var res sim.Result
	res.TotalPassengers = 2
	res.DeliveredPassengers = 2
	for _, w := range []int{3, 5} {
		res.WaitTime.Add(w)
	}
	for _, tr := range []int{5, 5} {
		res.TravelTime.Add(tr)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, 1, "lobby", &res); err != nil {
		t.Fatal(err)
	}
	want := `Building 1: lobby
Average wait time: 4.00
Average travel time: 5.00
Wait time std dev: 1.00
Travel time std dev: 0.00

Total passengers: 2
Delivered passengers: 2
`
	if buf.String() != want {
		t.Errorf("report:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	feedFile := filepath.Join(dir, "feed.csv")
	err := os.WriteFile(feedFile, []byte("time,start,end\n0,1,2\n0,2,1\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	settings := filepath.Join(dir, "sim.toml")
	err = os.WriteFile(settings, []byte(`log_level = "error"

[[building]]
name = "small"
floors = 5
elevators = 1
speed = 1
stop_duration = 1
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	*configFile = settings
	*passengers = feedFile
	*envFile = filepath.Join(dir, ".env")
	*activity = filepath.Join(dir, "activity.log")
	t.Cleanup(func() {
		*configFile, *passengers, *envFile, *activity = "", "", ".env", ""
	})

	var out bytes.Buffer
	if err := run(&out); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Building 1: small\n") {
		t.Errorf("report = %q", out.String())
	}
	if !strings.Contains(out.String(), "Delivered passengers: 2\n") {
		t.Errorf("report = %q, want both passengers delivered", out.String())
	}

	log, err := os.ReadFile(*activity)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(log), "boarded") {
		t.Errorf("activity log has no boarding events:\n%s", log)
	}
}

func TestRunMissingFeed(t *testing.T) {
	*passengers = filepath.Join(t.TempDir(), "missing.csv")
	*envFile = ""
	t.Cleanup(func() {
		*passengers, *envFile = "", ".env"
	})

	if err := run(&bytes.Buffer{}); err == nil {
		t.Errorf("run with a missing feed: no error")
	}
}
