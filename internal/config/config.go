// Package config provides YAML-based game configuration loading and
// difficulty management for HexPop.
package config

import "time"

// HexPopConfig contains all configuration for the HexPop game.
type HexPopConfig struct {
	Board      HexPopBoard      `yaml:"board"`
	Pacing     HexPopPacing     `yaml:"pacing"`
	Bombs      HexPopBombs      `yaml:"bombs"`
	PowerUps   HexPopPowerUps   `yaml:"power_ups"`
	Shooter    HexPopShooter    `yaml:"shooter"`
	Scoring    HexPopScoring    `yaml:"scoring"`
	Endless    HexPopEndless    `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HexPopBoard defines the playfield geometry in world units.
type HexPopBoard struct {
	Radius     float64 `yaml:"radius"`
	DeathLineY float64 `yaml:"death_line_y"`
}

// HexPopPacing defines the descent control loop.
type HexPopPacing struct {
	PreferredY   float64 `yaml:"preferred_y"`
	Baseline     float64 `yaml:"baseline"`
	PushDownCap  float64 `yaml:"push_down_cap"`
	ApproachRate float64 `yaml:"approach_rate"`
}

// HexPopBombs defines bomb behavior.
type HexPopBombs struct {
	Fuse time.Duration `yaml:"fuse"`
}

// HexPopPowerUps defines power-up timers.
type HexPopPowerUps struct {
	Duration time.Duration `yaml:"duration"`
	Chance   int           `yaml:"chance"`    // Percent of settled shots that spawn one
	BombOdds int           `yaml:"bomb_odds"` // Percent of obtained power-ups that become bombs
}

// HexPopShooter defines the launcher at the bottom of the field.
type HexPopShooter struct {
	Speed    float64 `yaml:"speed"`     // World units per second
	AimStep  float64 `yaml:"aim_step"`  // Degrees per key press
	MaxAngle float64 `yaml:"max_angle"` // Degrees left or right of straight up
	SubSteps int     `yaml:"sub_steps"` // Collision checks per tick
}

// HexPopScoring defines points.
type HexPopScoring struct {
	PerBall    int `yaml:"per_ball"`
	PerDrop    int `yaml:"per_drop"`
	LevelClear int `yaml:"level_clear"`
}

// HexPopEndless defines the endless mode row feeder.
type HexPopEndless struct {
	Columns     int `yaml:"columns"`
	StartRows   int `yaml:"start_rows"`
	Colors      int `yaml:"colors"`
	MaxColors   int `yaml:"max_colors"`
	StoneChance int `yaml:"stone_chance"` // Percent per fed cell
	BombChance  int `yaml:"bomb_chance"`  // Percent per fed cell
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to descent speed at max difficulty
	ExtraColors     int     `yaml:"extra_colors"`     // Colors added to the endless feeder at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a string to a preset. ok is false for unknown names.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
