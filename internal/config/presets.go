package config

var Presets = map[string]map[string]*Config{
	"harmonic": {
		"ground": {
			Potential: "harmonic", Params: map[string]float64{"omega": 1.0},
			Grid: GridConfig{N: 1000, Xmin: -10, Xmax: 10}, States: 8,
		},
		"coherent": {
			Potential: "harmonic", Params: map[string]float64{"omega": 1.0},
			Grid:   GridConfig{N: 1000, Xmin: -15, Xmax: 15},
			Packet: PacketConfig{Center: -4, Sigma: 0.707, Momentum: 0},
			Dt:     0.002, Steps: 4000, Stride: 20,
		},
	},
	"well": {
		"box": {
			Potential: "well", Params: map[string]float64{"width": 1.0, "xmin": 0.0},
			Grid: GridConfig{N: 800, Xmin: -0.5, Xmax: 1.5}, States: 6,
		},
	},
	"barrier": {
		"tunnel": {
			Potential: "barrier", Params: map[string]float64{"width": 1.0, "xmin": 0.0, "v0": 1.0},
			Grid:   GridConfig{N: 1200, Xmin: -40, Xmax: 40},
			Packet: PacketConfig{Center: -12, Sigma: 2.0, Momentum: 1.0},
			Dt:     0.02, Steps: 1500, Stride: 15,
		},
	},
	"coulomb": {
		"1s": {
			Potential: "coulomb", Params: map[string]float64{"z": 1.0},
			Grid: GridConfig{N: 2000, Rmax: 100}, States: 4, L: 0,
		},
	},
	"double_well": {
		"split": {
			Potential: "double_well",
			Params:    map[string]float64{"width": 1.0, "xmin1": -1.5, "xmin2": 0.5, "v0": 40.0},
			Grid:      GridConfig{N: 1000, Xmin: -4, Xmax: 4}, States: 4,
		},
	},
	"free": {
		"packet": {
			Potential: "free",
			Grid:      GridConfig{N: 1000, Xmin: -40, Xmax: 40},
			Packet:    PacketConfig{Center: -15, Sigma: 2.0, Momentum: 2.0},
			Dt:        0.01, Steps: 1500, Stride: 15,
		},
	},
}

func GetPreset(potential, preset string) *Config {
	group, ok := Presets[potential]
	if !ok {
		return nil
	}
	cfg, ok := group[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(potential string) []string {
	group, ok := Presets[potential]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
