package core

// RuntimeConfig contains the timing parameters handed to the game loop.
// All durations are in milliseconds of the injected Clock.
type RuntimeConfig struct {
	Seed           int64   // RNG seed; 0 means seed from the clock at match start
	Speeds         []int64 // Ball tick intervals selectable with '1'..'4'
	InitialSpeed   int     // Index into Speeds used when a match starts
	AutoRepeatMS   int64   // Repeat interval for held buttons
	ScoreOverlayMS int64   // How long the score overlay stays up
	StartFrameMS   int64   // Start screen animation frame interval
	WinScore       int     // Score that ends the match
}

// DefaultConfig returns a RuntimeConfig with the stock timings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:           0,
		Speeds:         []int64{500, 300, 200, 125},
		InitialSpeed:   0,
		AutoRepeatMS:   100,
		ScoreOverlayMS: 1500,
		StartFrameMS:   500,
		WinScore:       9,
	}
}

// SpeedMS returns the tick interval for the given speed index.
// Out-of-range indices fall back to the first entry.
func (c RuntimeConfig) SpeedMS(index int) int64 {
	if index < 0 || index >= len(c.Speeds) {
		if len(c.Speeds) == 0 {
			return 500
		}
		return c.Speeds[0]
	}
	return c.Speeds[index]
}
