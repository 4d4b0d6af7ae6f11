// Package config provides YAML-based configuration loading and speed presets
// for matrix-pong.
package config

// PongConfig contains all configuration for a match.
type PongConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
	Display  DisplayConfig  `yaml:"display"`
}

// TimingConfig holds every interval of the game loop, in milliseconds.
type TimingConfig struct {
	SpeedsMS       []int64 `yaml:"speeds_ms"`
	AutoRepeatMS   int64   `yaml:"auto_repeat_ms"`
	ScoreOverlayMS int64   `yaml:"score_overlay_ms"`
	StartFrameMS   int64   `yaml:"start_frame_ms"`
	PollMS         int64   `yaml:"poll_ms"`
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	WinScore    int         `yaml:"win_score"`
	SpeedPreset SpeedPreset `yaml:"speed_preset"`
}

// InputConfig tunes keyboard handling.
type InputConfig struct {
	ReleaseAfterMS int64 `yaml:"release_after_ms"` // Key-release synthesis window
}

// DisplayConfig controls the terminal rendering of the matrix.
type DisplayConfig struct {
	Pixel        string `yaml:"pixel"` // Glyph drawn for one matrix pixel
	ShowSegments bool   `yaml:"show_segments"`
}
