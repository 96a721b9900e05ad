package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexPop loads HexPop configuration.
// Search order: customPath -> ~/.hexpop/configs/hexpop.yaml -> ./configs/hexpop.yaml -> embedded default
// Files are decoded over the hardcoded defaults, so partial files only
// override the keys they set.
func LoadHexPop(customPath string) (HexPopConfig, error) {
	cfg := DefaultHexPopConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hexpop.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultHexPopConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hexpop.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultHexPopConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultHexPopYAML, &cfg); err != nil {
		return DefaultHexPopConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path under the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexpop", "configs", filename)
}

// ApplyHexPopPreset modifies the config based on a difficulty preset.
func ApplyHexPopPreset(cfg *HexPopConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Pacing.Baseline = 1
		cfg.Bombs.Fuse = cfg.Bombs.Fuse * 3 / 2
		cfg.Endless.Colors = 3
	case DifficultyHard:
		cfg.Pacing.Baseline = 4
		cfg.Pacing.PushDownCap = cfg.Pacing.PushDownCap * 2
		cfg.Endless.Colors = 5
		cfg.PowerUps.Chance = cfg.PowerUps.Chance / 2
	}
}

// Validate reports the first configuration value that cannot be played.
func (c HexPopConfig) Validate() error {
	switch {
	case c.Board.Radius <= 0:
		return fmt.Errorf("board.radius must be positive, got %v", c.Board.Radius)
	case c.Board.DeathLineY <= 2*c.Board.Radius:
		return fmt.Errorf("board.death_line_y %v leaves no room for a row", c.Board.DeathLineY)
	case c.Shooter.Speed <= 0:
		return fmt.Errorf("shooter.speed must be positive, got %v", c.Shooter.Speed)
	case c.Shooter.MaxAngle <= 0 || c.Shooter.MaxAngle >= 90:
		return fmt.Errorf("shooter.max_angle must be in (0, 90), got %v", c.Shooter.MaxAngle)
	case c.Endless.Colors < 1 || c.Endless.Colors > c.Endless.MaxColors:
		return fmt.Errorf("endless.colors %d must be in [1, max_colors=%d]", c.Endless.Colors, c.Endless.MaxColors)
	case c.Endless.Columns < 2:
		return fmt.Errorf("endless.columns must be at least 2, got %d", c.Endless.Columns)
	}
	return nil
}
