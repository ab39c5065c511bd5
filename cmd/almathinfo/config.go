package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aldebaran/libalmath/types"
)

// Config holds the inputs of every subcommand. Fields missing from the
// YAML file keep their defaults.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Hull      HullConfig      `yaml:"hull"`
	Dubins    DubinsConfig    `yaml:"dubins"`
	Roots     RootsConfig     `yaml:"roots"`
	Interp    InterpConfig    `yaml:"interp"`
	Transform TransformConfig `yaml:"transform"`
}

type HullConfig struct {
	Points [][2]float64 `yaml:"points"`
	// MinAngle removes hull vertices whose turning angle is below it, in
	// radians. Zero keeps every vertex.
	MinAngle float64 `yaml:"min_angle"`
}

type DubinsConfig struct {
	Target [3]float64 `yaml:"target"`
	Radius float64    `yaml:"radius"`
	Step   float64    `yaml:"step"`
}

type RootsConfig struct {
	Coefficients []float64 `yaml:"coefficients"`
}

type InterpConfig struct {
	Times  []float64 `yaml:"times"`
	Points []float64 `yaml:"points"`
	Period float64   `yaml:"period"`
}

type TransformConfig struct {
	Pose [6]float64 `yaml:"pose"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "info",
		Hull: HullConfig{
			Points: [][2]float64{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}, {1, 3}},
		},
		Dubins: DubinsConfig{Target: [3]float64{5, 2, 0}, Radius: 0.5, Step: 0.1},
		Roots:  RootsConfig{Coefficients: []float64{1, 0, -5, 0, 4}},
		Interp: InterpConfig{
			Times:  []float64{0, 1, 2, 3},
			Points: []float64{0, 1, 0.5, 0},
			Period: 0.1,
		},
		Transform: TransformConfig{Pose: [6]float64{0.1, 0.2, 0.3, 0, 0, 1.5707963267948966}},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

var errInvalidConfig = errors.New("invalid config")

func (c Config) validate() error {
	switch {
	case c.Dubins.Radius <= 0:
		return fmt.Errorf("%w: dubins.radius must be positive", errInvalidConfig)
	case c.Dubins.Step <= 0:
		return fmt.Errorf("%w: dubins.step must be positive", errInvalidConfig)
	case len(c.Interp.Times) != len(c.Interp.Points):
		return fmt.Errorf("%w: interp.times and interp.points differ in length", errInvalidConfig)
	case c.Interp.Period <= 0:
		return fmt.Errorf("%w: interp.period must be positive", errInvalidConfig)
	}
	return nil
}

func (h HullConfig) positions() []types.Position2D {
	out := make([]types.Position2D, len(h.Points))
	for i, p := range h.Points {
		out[i] = types.Position2D{X: p[0], Y: p[1]}
	}
	return out
}

func (d DubinsConfig) target() types.Pose2D {
	return types.Pose2D{X: d.Target[0], Y: d.Target[1], Theta: d.Target[2]}
}

func (t TransformConfig) position6D() types.Position6D {
	p := t.Pose
	return types.Position6D{X: p[0], Y: p[1], Z: p[2], WX: p[3], WY: p[4], WZ: p[5]}
}
