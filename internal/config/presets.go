package config

import "fmt"

// SpeedPreset names one of the selectable ball speeds.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
	SpeedInsane SpeedPreset = "insane"
)

// Presets lists the speed presets from slowest to fastest.
var Presets = []SpeedPreset{SpeedEasy, SpeedNormal, SpeedHard, SpeedInsane}

// ParseSpeedPreset validates a preset name. The empty string maps to easy.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	if s == "" {
		return SpeedEasy, nil
	}
	p := SpeedPreset(s)
	if p.Index() < 0 {
		return "", fmt.Errorf("unknown speed preset %q (want easy, normal, hard or insane)", s)
	}
	return p, nil
}

// Index returns the speed slot for a preset, matching the '1'..'4' keys
// minus one, or -1 for an unknown preset.
func (p SpeedPreset) Index() int {
	switch p {
	case SpeedEasy:
		return 0
	case SpeedNormal:
		return 1
	case SpeedHard:
		return 2
	case SpeedInsane:
		return 3
	default:
		return -1
	}
}

// ApplySpeedPreset sets the starting speed of cfg.
func ApplySpeedPreset(cfg *PongConfig, preset SpeedPreset) {
	if preset.Index() < 0 {
		return
	}
	cfg.Gameplay.SpeedPreset = preset
}
