package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/boids/internal/flock"
	"github.com/san-kum/boids/internal/mode"
	"github.com/san-kum/boids/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBoids       = 500
	DefaultWidth       = 800
	DefaultHeight      = 600
	DefaultTickRate    = 60
	DefaultMaxCatchUp  = 5
	DefaultBoidsTime   = 30.0
	DefaultPatternTime = 35.0
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid config")

type Config struct {
	Boids      int            `yaml:"boids"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	TickRate   int            `yaml:"tick_rate"`
	MaxCatchUp int            `yaml:"max_catch_up"`
	Seed       int64          `yaml:"seed"`
	Flock      FlockConfig    `yaml:"flock"`
	Schedule   ScheduleConfig `yaml:"schedule"`
}

type FlockConfig struct {
	MaxSpeed          float64 `yaml:"max_speed"`
	NeighborRadius    float64 `yaml:"neighbor_radius"`
	Alignment         float64 `yaml:"alignment"`
	Cohesion          float64 `yaml:"cohesion"`
	Separation        float64 `yaml:"separation"`
	PatternForce      float64 `yaml:"pattern_force"`
	PatternSeparation float64 `yaml:"pattern_separation"`
	PhaseSpread       float64 `yaml:"phase_spread"`
}

// ScheduleConfig times are in seconds.
type ScheduleConfig struct {
	Auto        bool    `yaml:"auto"`
	BoidsTime   float64 `yaml:"boids_time"`
	PatternTime float64 `yaml:"pattern_time"`
	ClockStep   float64 `yaml:"clock_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Boids:      DefaultBoids,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		TickRate:   DefaultTickRate,
		MaxCatchUp: DefaultMaxCatchUp,
		Flock: FlockConfig{
			MaxSpeed:          flock.DefaultMaxSpeed,
			NeighborRadius:    flock.DefaultNeighborRadius,
			Alignment:         flock.DefaultAlignment,
			Cohesion:          flock.DefaultCohesion,
			Separation:        flock.DefaultSeparation,
			PatternForce:      flock.DefaultPatternForce,
			PatternSeparation: flock.DefaultPatternSeparation,
			PhaseSpread:       flock.DefaultPhaseSpread,
		},
		Schedule: ScheduleConfig{
			BoidsTime:   DefaultBoidsTime,
			PatternTime: DefaultPatternTime,
			ClockStep:   mode.DefaultClockStep,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	switch {
	case c.Boids < 1:
		return fmt.Errorf("%w: boids must be positive, got %d", ErrInvalidConfig, c.Boids)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	case c.MaxCatchUp <= 0:
		return fmt.Errorf("%w: max_catch_up must be positive, got %d", ErrInvalidConfig, c.MaxCatchUp)
	case c.Schedule.BoidsTime < 0 || c.Schedule.PatternTime < 0:
		return fmt.Errorf("%w: dwell times must not be negative", ErrInvalidConfig)
	case c.Schedule.ClockStep <= 0:
		return fmt.Errorf("%w: clock_step must be positive, got %f", ErrInvalidConfig, c.Schedule.ClockStep)
	}
	if err := c.FlockParams().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ResolveSeed picks a seed from now when none was given. An explicit seed,
// including 0, is kept.
func (c *Config) ResolveSeed(explicit bool, now time.Time) {
	if !explicit && c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
}

func (c *Config) FlockParams() flock.Params {
	return flock.Params{
		MaxSpeed:          c.Flock.MaxSpeed,
		NeighborRadius:    c.Flock.NeighborRadius,
		Alignment:         c.Flock.Alignment,
		Cohesion:          c.Flock.Cohesion,
		Separation:        c.Flock.Separation,
		PatternForce:      c.Flock.PatternForce,
		PatternSeparation: c.Flock.PatternSeparation,
		PhaseSpread:       c.Flock.PhaseSpread,
	}
}

func (c *Config) ModeConfig() mode.Config {
	return mode.Config{
		Auto:        c.Schedule.Auto,
		BoidsTime:   seconds(c.Schedule.BoidsTime),
		PatternTime: seconds(c.Schedule.PatternTime),
		ClockStep:   c.Schedule.ClockStep,
	}
}

func (c *Config) WorldConfig() sim.WorldConfig {
	return sim.WorldConfig{
		Boids:    c.Boids,
		Viewport: flock.Viewport{Width: float64(c.Width), Height: float64(c.Height)},
		Flock:    c.FlockParams(),
		Mode:     c.ModeConfig(),
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		TickRate:   c.TickRate,
		MaxCatchUp: c.MaxCatchUp,
	}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
