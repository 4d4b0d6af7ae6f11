package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/matrix-pong/internal/core"
)

// LoadPong loads the game configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets.
func LoadPong(customPath string) (PongConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PongConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PongConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "pong.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (PongConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PongConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil || cfg.Validate() != nil {
		return PongConfig{}, false
	}
	return cfg, true
}

func parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	// A speeds list in the file replaces the default one wholesale
	cfg.Timing.SpeedsMS = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if cfg.Timing.SpeedsMS == nil {
		cfg.Timing.SpeedsMS = DefaultPongConfig().Timing.SpeedsMS
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

// Validate reports every invalid setting.
func (c PongConfig) Validate() error {
	var errs []error

	if n := len(c.Timing.SpeedsMS); n == 0 || n > 4 {
		errs = append(errs, fmt.Errorf("timing.speeds_ms must have 1 to 4 entries, got %d", n))
	}
	for i, s := range c.Timing.SpeedsMS {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("timing.speeds_ms[%d] must be positive, got %d", i, s))
		}
	}
	if c.Timing.AutoRepeatMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.auto_repeat_ms must be positive, got %d", c.Timing.AutoRepeatMS))
	}
	if c.Timing.ScoreOverlayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.score_overlay_ms must not be negative, got %d", c.Timing.ScoreOverlayMS))
	}
	if c.Timing.StartFrameMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.start_frame_ms must be positive, got %d", c.Timing.StartFrameMS))
	}
	if c.Timing.PollMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.poll_ms must be positive, got %d", c.Timing.PollMS))
	}
	if c.Gameplay.WinScore < 1 || c.Gameplay.WinScore > 9 {
		errs = append(errs, fmt.Errorf("gameplay.win_score must be 1-9, got %d", c.Gameplay.WinScore))
	}
	if idx := c.Gameplay.SpeedPreset.Index(); idx < 0 {
		errs = append(errs, fmt.Errorf("gameplay.speed_preset %q is unknown", c.Gameplay.SpeedPreset))
	} else if idx >= len(c.Timing.SpeedsMS) {
		errs = append(errs, fmt.Errorf("gameplay.speed_preset %q has no entry in timing.speeds_ms", c.Gameplay.SpeedPreset))
	}
	if c.Input.ReleaseAfterMS <= 0 {
		errs = append(errs, fmt.Errorf("input.release_after_ms must be positive, got %d", c.Input.ReleaseAfterMS))
	}

	return errors.Join(errs...)
}

// Runtime converts the file configuration into the game loop's timing
// parameters.
func (c PongConfig) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	rc.Speeds = append([]int64(nil), c.Timing.SpeedsMS...)
	rc.InitialSpeed = max(c.Gameplay.SpeedPreset.Index(), 0)
	rc.AutoRepeatMS = c.Timing.AutoRepeatMS
	rc.ScoreOverlayMS = c.Timing.ScoreOverlayMS
	rc.StartFrameMS = c.Timing.StartFrameMS
	rc.WinScore = c.Gameplay.WinScore
	return rc
}
