package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hexpop.yaml
var defaultHexPopYAML []byte

// DefaultHexPopConfig returns the default HexPop configuration.
func DefaultHexPopConfig() HexPopConfig {
	return HexPopConfig{
		Board: HexPopBoard{
			Radius:     16,
			DeathLineY: 440,
		},
		Pacing: HexPopPacing{
			PreferredY:   220,
			Baseline:     2,
			PushDownCap:  6,
			ApproachRate: 2,
		},
		Bombs: HexPopBombs{
			Fuse: 750 * time.Millisecond,
		},
		PowerUps: HexPopPowerUps{
			Duration: 10 * time.Second,
			Chance:   8,
			BombOdds: 40,
		},
		Shooter: HexPopShooter{
			Speed:    640,
			AimStep:  4,
			MaxAngle: 80,
			SubSteps: 4,
		},
		Scoring: HexPopScoring{
			PerBall:    10,
			PerDrop:    20,
			LevelClear: 500,
		},
		Endless: HexPopEndless{
			Columns:     8,
			StartRows:   5,
			Colors:      4,
			MaxColors:   6,
			StoneChance: 3,
			BombChance:  2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				ExtraColors:     2,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "hexpop", "hexpop-endless":
		return defaultHexPopYAML
	default:
		return nil
	}
}
