// Package config provides YAML-based tuning for the game rules and the
// particle simulation, with an embedded default configuration.
package config

// Config is the full game configuration.
type Config struct {
	Rules     Rules     `yaml:"rules"`
	Particles Particles `yaml:"particles"`
}

// Rules tunes board seeding and tile spawning.
type Rules struct {
	SeedTilesMin  int     `yaml:"seed_tiles_min"`  // Minimum tiles placed on reset
	SeedTilesMax  int     `yaml:"seed_tiles_max"`  // Maximum tiles placed on reset
	SpawnFourProb float64 `yaml:"spawn_four_prob"` // Probability a spawned tile is a 4 instead of a 2
}

// Particles tunes the merge-burst simulation. Positions and velocities are
// in board cell units; life is in abstract units drained by Decay per second.
type Particles struct {
	Count    int     `yaml:"count"`    // Particles per merge burst
	SizeMin  int     `yaml:"size_min"` // Inclusive glyph-run size range
	SizeMax  int     `yaml:"size_max"`
	Speed    float64 `yaml:"speed"`    // Per-axis velocity drawn from [-speed, speed)
	LifeMin  float64 `yaml:"life_min"` // Initial life range
	LifeMax  float64 `yaml:"life_max"`
	LifeRef  float64 `yaml:"life_ref"` // Alpha = life / life_ref
	Decay    float64 `yaml:"decay"`    // Life units lost per second
	Friction float64 `yaml:"friction"` // Velocity magnitude lost per second, per axis
}

// Lifetime returns the maximum wall-clock seconds a particle can live.
func (p Particles) Lifetime() float64 {
	if p.Decay <= 0 {
		return 0
	}
	return p.LifeMax / p.Decay
}
