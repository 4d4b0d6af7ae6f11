package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Timing: TimingConfig{
			SpeedsMS:       []int64{500, 300, 200, 125},
			AutoRepeatMS:   100,
			ScoreOverlayMS: 1500,
			StartFrameMS:   500,
			PollMS:         10,
		},
		Gameplay: GameplayConfig{
			WinScore:    9,
			SpeedPreset: SpeedEasy,
		},
		Input: InputConfig{
			ReleaseAfterMS: 90,
		},
		Display: DisplayConfig{
			Pixel:        "██",
			ShowSegments: true,
		},
	}
}
