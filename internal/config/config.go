package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt     = 0.005
	DefaultSteps  = 1000
	DefaultStride = 10
	DefaultN      = 600
	DefaultXmin   = -20.0
	DefaultXmax   = 20.0
	DefaultStates = 6
	DefaultSigma  = 1.0
)

type Config struct {
	Potential string             `yaml:"potential"`
	Params    map[string]float64 `yaml:"params"`
	Grid      GridConfig         `yaml:"grid"`
	Packet    PacketConfig       `yaml:"packet"`
	Dt        float64            `yaml:"dt"`
	Steps     int                `yaml:"steps"`
	Stride    int                `yaml:"stride"`
	States    int                `yaml:"states"`
	L         int                `yaml:"l"`
}

type GridConfig struct {
	N    int     `yaml:"n"`
	Xmin float64 `yaml:"xmin"`
	Xmax float64 `yaml:"xmax"`
	Rmax float64 `yaml:"rmax"`
}

type PacketConfig struct {
	Center   float64 `yaml:"center"`
	Sigma    float64 `yaml:"sigma"`
	Momentum float64 `yaml:"momentum"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: "harmonic",
		Params:    map[string]float64{},
		Grid:      GridConfig{N: DefaultN, Xmin: DefaultXmin, Xmax: DefaultXmax},
		Packet:    PacketConfig{Sigma: DefaultSigma},
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		Stride:    DefaultStride,
		States:    DefaultStates,
	}
}

// FillDefaults replaces unset (zero) numeric fields with package defaults,
// so partial presets and config files stay terse.
func (c *Config) FillDefaults() {
	if c.Dt == 0 {
		c.Dt = DefaultDt
	}
	if c.Steps == 0 {
		c.Steps = DefaultSteps
	}
	if c.Stride == 0 {
		c.Stride = DefaultStride
	}
	if c.States == 0 {
		c.States = DefaultStates
	}
	if c.Grid.N == 0 {
		c.Grid.N = DefaultN
	}
	if c.Grid.Xmin == 0 && c.Grid.Xmax == 0 {
		c.Grid.Xmin, c.Grid.Xmax = DefaultXmin, DefaultXmax
	}
	if c.Packet.Sigma == 0 {
		c.Packet.Sigma = DefaultSigma
	}
	if c.Params == nil {
		c.Params = map[string]float64{}
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
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
