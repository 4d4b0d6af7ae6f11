package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded defaults invalid: %v", err)
	}

	def := DefaultPongConfig()
	if len(cfg.Timing.SpeedsMS) != len(def.Timing.SpeedsMS) {
		t.Fatalf("speeds = %v, expected %v", cfg.Timing.SpeedsMS, def.Timing.SpeedsMS)
	}
	for i := range def.Timing.SpeedsMS {
		if cfg.Timing.SpeedsMS[i] != def.Timing.SpeedsMS[i] {
			t.Errorf("speeds[%d] = %d, expected %d", i, cfg.Timing.SpeedsMS[i], def.Timing.SpeedsMS[i])
		}
	}
	if cfg.Timing.AutoRepeatMS != def.Timing.AutoRepeatMS ||
		cfg.Timing.ScoreOverlayMS != def.Timing.ScoreOverlayMS ||
		cfg.Timing.StartFrameMS != def.Timing.StartFrameMS ||
		cfg.Timing.PollMS != def.Timing.PollMS {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Gameplay != def.Gameplay || cfg.Input != def.Input || cfg.Display != def.Display {
		t.Errorf("embedded config %+v differs from hardcoded %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.yaml")
	data := "timing:\n  speeds_ms: [400, 100]\ngameplay:\n  win_score: 5\n  speed_preset: normal\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}

	if len(cfg.Timing.SpeedsMS) != 2 || cfg.Timing.SpeedsMS[0] != 400 {
		t.Errorf("speeds = %v, expected [400 100]", cfg.Timing.SpeedsMS)
	}
	if cfg.Gameplay.WinScore != 5 {
		t.Errorf("win score = %d, expected 5", cfg.Gameplay.WinScore)
	}
	// Keys missing from the file keep their defaults
	if cfg.Timing.AutoRepeatMS != 100 || cfg.Input.ReleaseAfterMS != 90 {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  win_score: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("timing: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "failed to read"},
		{"broken yaml", broken, "failed to parse"},
		{"invalid value", invalid, "win_score"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadPong(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFallsBackToLocalDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("gameplay:\n  win_score: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("win score = %d, expected 3 from ./configs", cfg.Gameplay.WinScore)
	}
}

func TestLoadUserDirWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	userDir := filepath.Join(dir, ".pong", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "pong.yaml"), []byte("gameplay:\n  win_score: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "pong.yaml"), []byte("gameplay:\n  win_score: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 4 {
		t.Errorf("win score = %d, expected 4 from the user directory", cfg.Gameplay.WinScore)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadPong("")
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 9 || cfg.Gameplay.SpeedPreset != SpeedEasy {
		t.Errorf("unexpected defaults: %+v", cfg.Gameplay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *PongConfig)
		want   string
	}{
		{"no speeds", func(c *PongConfig) { c.Timing.SpeedsMS = nil }, "speeds_ms"},
		{"too many speeds", func(c *PongConfig) { c.Timing.SpeedsMS = []int64{1, 2, 3, 4, 5} }, "speeds_ms"},
		{"zero speed", func(c *PongConfig) { c.Timing.SpeedsMS[2] = 0 }, "speeds_ms[2]"},
		{"auto repeat", func(c *PongConfig) { c.Timing.AutoRepeatMS = 0 }, "auto_repeat_ms"},
		{"overlay", func(c *PongConfig) { c.Timing.ScoreOverlayMS = -1 }, "score_overlay_ms"},
		{"start frame", func(c *PongConfig) { c.Timing.StartFrameMS = 0 }, "start_frame_ms"},
		{"poll", func(c *PongConfig) { c.Timing.PollMS = 0 }, "poll_ms"},
		{"win score low", func(c *PongConfig) { c.Gameplay.WinScore = 0 }, "win_score"},
		{"win score high", func(c *PongConfig) { c.Gameplay.WinScore = 10 }, "win_score"},
		{"unknown preset", func(c *PongConfig) { c.Gameplay.SpeedPreset = "ludicrous" }, "speed_preset"},
		{"preset without speed", func(c *PongConfig) {
			c.Timing.SpeedsMS = []int64{500}
			c.Gameplay.SpeedPreset = SpeedHard
		}, "no entry"},
		{"release", func(c *PongConfig) { c.Input.ReleaseAfterMS = 0 }, "release_after_ms"},
	}

	if err := DefaultPongConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		in      string
		want    SpeedPreset
		index   int
		wantErr bool
	}{
		{"", SpeedEasy, 0, false},
		{"easy", SpeedEasy, 0, false},
		{"normal", SpeedNormal, 1, false},
		{"hard", SpeedHard, 2, false},
		{"insane", SpeedInsane, 3, false},
		{"turbo", "", -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParseSpeedPreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseSpeedPreset(%q) error = %v", tc.in, err)
			}
			if p != tc.want || p.Index() != tc.index {
				t.Errorf("ParseSpeedPreset(%q) = %q (index %d), expected %q (index %d)", tc.in, p, p.Index(), tc.want, tc.index)
			}
		})
	}
}

func TestApplySpeedPreset(t *testing.T) {
	cfg := DefaultPongConfig()

	ApplySpeedPreset(&cfg, SpeedHard)
	if cfg.Gameplay.SpeedPreset != SpeedHard {
		t.Errorf("preset = %q, expected hard", cfg.Gameplay.SpeedPreset)
	}

	ApplySpeedPreset(&cfg, "bogus")
	if cfg.Gameplay.SpeedPreset != SpeedHard {
		t.Errorf("unknown preset overwrote the config: %q", cfg.Gameplay.SpeedPreset)
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Gameplay.SpeedPreset = SpeedInsane
	cfg.Gameplay.WinScore = 5
	cfg.Timing.AutoRepeatMS = 80

	rc := cfg.Runtime(42)

	if rc.Seed != 42 || rc.WinScore != 5 || rc.AutoRepeatMS != 80 {
		t.Errorf("runtime config = %+v", rc)
	}
	if rc.InitialSpeed != 3 || rc.SpeedMS(rc.InitialSpeed) != 125 {
		t.Errorf("initial speed = %d (%dms), expected slot 3 at 125ms", rc.InitialSpeed, rc.SpeedMS(rc.InitialSpeed))
	}

	// The runtime copy must not alias the config's slice
	rc.Speeds[0] = 1
	if cfg.Timing.SpeedsMS[0] != 500 {
		t.Error("Runtime() shares the speeds slice")
	}
}
