// Command elevatorsim replays a passenger arrival feed through one or more
// simulated buildings and reports the average wait and travel times.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jerryland3/ElevatorSimulation/pkg/config"
	"github.com/jerryland3/ElevatorSimulation/pkg/feed"
	"github.com/jerryland3/ElevatorSimulation/pkg/logger"
	"github.com/jerryland3/ElevatorSimulation/pkg/sim"
)

var (
	configFile = flag.String("config", "",
		"TOML or YAML settings file. The original two buildings are simulated if empty.")
	passengers = flag.String("passengers", "",
		"Arrival feed to replay. Overrides the settings file.")
	envFile = flag.String("env", ".env",
		"File with environment overrides. Ignored if missing.")
	activity = flag.String("activity", "",
		"Write the activity log of every run to this file.")
	logLevel = flag.String("loglevel", "",
		"Log level: debug, info, warn or error.")
)

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		logger.GetLogger().Error().Err(err).Msg("simulation failed")
		os.Exit(1)
	}
}

func run(out io.Writer) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}

	level, _ := logger.ParseLevel(conf.LogLevel)
	log := logger.GetLogger().Level(level)

	arrivals, err := feed.ReadFile(conf.Passengers)
	if err != nil {
		return err
	}
	log.Info().Str("feed", conf.Passengers).Int("passengers", len(arrivals)).Msg("loaded arrival feed")

	activityLog := log
	if conf.ActivityLog != "" {
		var f *os.File
		activityLog, f, err = logger.OpenActivityLog(conf.ActivityLog, zerolog.DebugLevel)
		if err != nil {
			return err
		}
		defer f.Close()
	}

	for i, b := range conf.Buildings {
		building, err := sim.NewBuilding(b.SimConfig(), arrivals,
			sim.WithLogger(activityLog.With().Str("building", b.Name).Logger()))
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}

		res, err := building.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name, err)
		}

		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := writeReport(out, i+1, b.Name, &res); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig merges the settings file, the environment and the command
// line, in increasing order of precedence.
func loadConfig() (*config.Simulation, error) {
	conf := config.Default()
	if *configFile != "" {
		var err error
		if conf, err = config.Load(*configFile); err != nil {
			return nil, err
		}
	}

	if err := conf.ApplyEnv(*envFile); err != nil {
		return nil, err
	}

	if *passengers != "" {
		conf.Passengers = *passengers
	}
	if *activity != "" {
		conf.ActivityLog = *activity
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
