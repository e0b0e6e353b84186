package config

import (
	_ "embed"
)

//go:embed defaults/tileburst.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Rules: Rules{
			SeedTilesMin:  2,
			SeedTilesMax:  3,
			SpawnFourProb: 0.5,
		},
		Particles: Particles{
			Count:    20,
			SizeMin:  1,
			SizeMax:  2,
			Speed:    6.0,
			LifeMin:  150,
			LifeMax:  250,
			LifeRef:  200,
			Decay:    200,
			Friction: 2.4,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
