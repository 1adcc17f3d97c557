// Package config loads the simulation settings: the arrival feed to
// replay, where to write the activity log and the buildings to simulate.
//
// Settings are read from a TOML or YAML file and may be overridden from
// the environment or a .env file:
//
//	passengers = "Mod10_Assignment_Elevators.csv"
//	log_level  = "info"
//
//	[[building]]
//	name               = "slow elevators"
//	floors             = 100
//	elevators          = 4
//	speed              = 10
//	stop_duration      = 2
//	activation_offsets = [0, 100, 500, 700]
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jerryland3/ElevatorSimulation/pkg/logger"
	"github.com/jerryland3/ElevatorSimulation/pkg/sim"
)

const DefaultPassengers = "Mod10_Assignment_Elevators.csv"

// Environment variables overriding the file settings.
const (
	EnvPassengers  = "ELEVSIM_PASSENGERS"
	EnvActivityLog = "ELEVSIM_ACTIVITY_LOG"
	EnvLogLevel    = "ELEVSIM_LOG_LEVEL"
)

var (
	ErrUnknownFormat = errors.New("unknown config file format")
	ErrInvalid       = errors.New("invalid configuration")
)

type Building struct {
	Name              string `toml:"name" yaml:"name"`
	Floors            int    `toml:"floors" yaml:"floors"`
	Elevators         int    `toml:"elevators" yaml:"elevators"`
	Speed             int    `toml:"speed" yaml:"speed"`
	StopDuration      int    `toml:"stop_duration" yaml:"stop_duration"`
	ActivationOffsets []int  `toml:"activation_offsets" yaml:"activation_offsets"`
	MaxTicks          int    `toml:"max_ticks" yaml:"max_ticks"`
}

// SimConfig converts b to the configuration of a simulated building.
func (b Building) SimConfig() sim.Config {
	return sim.Config{
		Floors:            b.Floors,
		Elevators:         b.Elevators,
		Speed:             b.Speed,
		StopDuration:      b.StopDuration,
		ActivationOffsets: append([]int(nil), b.ActivationOffsets...),
		MaxTicks:          b.MaxTicks,
	}
}

type Simulation struct {
	Passengers  string     `toml:"passengers" yaml:"passengers"`
	ActivityLog string     `toml:"activity_log" yaml:"activity_log"`
	LogLevel    string     `toml:"log_level" yaml:"log_level"`
	Buildings   []Building `toml:"building" yaml:"buildings"`
}

// Default returns the two buildings of the original study: a hundred
// floors served by four elevators that come into service one after the
// other, once with 10 and once with 5 ticks per floor.
func Default() *Simulation {
	building := func(speed int) Building {
		return Building{
			Name:              fmt.Sprintf("%d seconds for elevator to move between floors", speed),
			Floors:            100,
			Elevators:         4,
			Speed:             speed,
			StopDuration:      2,
			ActivationOffsets: []int{0, 100, 500, 700},
		}
	}
	return &Simulation{
		Passengers: DefaultPassengers,
		LogLevel:   "info",
		Buildings:  []Building{building(10), building(5)},
	}
}

// Load reads the settings in filename. The format is picked by file
// extension: .toml, .yaml or .yml. Unknown keys are an error. Settings
// left out of the file take their default values.
func Load(filename string) (*Simulation, error) {
	c := new(Simulation)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		md, err := toml.DecodeFile(filename, c)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%s: %w: unknown key %q", filename, ErrInvalid, undecoded[0].String())
		}

	case ".yaml", ".yml":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}

	default:
		return nil, fmt.Errorf("%s: %w", filename, ErrUnknownFormat)
	}

	c.setDefaults()
	return c, nil
}

func (c *Simulation) setDefaults() {
	def := Default()
	if c.Passengers == "" {
		c.Passengers = def.Passengers
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Buildings) == 0 {
		c.Buildings = def.Buildings
	}
	for i := range c.Buildings {
		if c.Buildings[i].Name == "" {
			c.Buildings[i].Name = fmt.Sprintf("building %d", i+1)
		}
	}
}

// ApplyEnv overrides settings from the environment. Variables are read
// from envFile first, if it exists, and then from the process
// environment, which wins.
func (c *Simulation) ApplyEnv(envFile string) error {
	env := make(map[string]string)
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", envFile, err)
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for _, key := range []string{EnvPassengers, EnvActivityLog, EnvLogLevel} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}

	if v, ok := env[EnvPassengers]; ok && v != "" {
		c.Passengers = v
	}
	if v, ok := env[EnvActivityLog]; ok {
		c.ActivityLog = v
	}
	if v, ok := env[EnvLogLevel]; ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

func (c *Simulation) Validate() error {
	if c.Passengers == "" {
		return fmt.Errorf("%w: no passenger feed", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	if len(c.Buildings) == 0 {
		return fmt.Errorf("%w: no buildings", ErrInvalid)
	}
	for _, b := range c.Buildings {
		if err := b.SimConfig().Validate(); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, b.Name, err)
		}
	}
	return nil
}
