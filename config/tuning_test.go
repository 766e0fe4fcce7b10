package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTuning(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"empty", "", false},
		{"controller_only", "controller:\n  run_speed: 200\n  air_control: true\n", false},
		{"crouch_speed_too_high", "controller:\n  crouch_speed: 1.5\n", true},
		{"smoothing_negative", "controller:\n  movement_smoothing: -0.1\n", true},
		{"zero_mass", "controller:\n  mass: 0\n", true},
		{"zero_tick_rate", "sim:\n  tick_rate: 0\n", true},
		{"malformed", "controller: [", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(c.yaml))
			if (err != nil) != c.wantErr {
				t.Fatalf("ParseTuning err=%v, wantErr=%v", err, c.wantErr)
			}
		})
	}
}

func TestTuningApplyOnlyOverridesPresentFields(t *testing.T) {
	t.Cleanup(Reset)

	before := Controller
	tuning, err := ParseTuning([]byte(`
controller:
  run_speed: 200
  air_control: true
  what_is_ground: [ground, platform]
physics:
  swimming_gravity: 0.25
sim:
  tick_rate: 50
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tuning.Apply()

	if Controller.RunSpeed != 200 {
		t.Fatalf("RunSpeed = %v, want 200", Controller.RunSpeed)
	}
	if !Controller.AirControl {
		t.Fatalf("AirControl should be enabled")
	}
	if len(Controller.WhatIsGround) != 2 || Controller.WhatIsGround[1] != "platform" {
		t.Fatalf("WhatIsGround = %v", Controller.WhatIsGround)
	}
	if Controller.JumpForce != before.JumpForce {
		t.Fatalf("JumpForce changed to %v without an override", Controller.JumpForce)
	}
	if Physics.SwimmingGravity != 0.25 {
		t.Fatalf("SwimmingGravity = %v, want 0.25", Physics.SwimmingGravity)
	}
	if got := FixedDelta(); got != 1.0/50.0 {
		t.Fatalf("FixedDelta = %v, want 0.02", got)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestWatchTuningReloadsOnReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("controller:\n  run_speed: 100\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	// Replace atomically so the watcher never sees a half-written file.
	tmp := filepath.Join(dir, "tuning.tmp")
	if err := os.WriteFile(tmp, []byte("controller:\n  run_speed: 321\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case tuning := <-w.Updates:
		if tuning == nil || tuning.Controller.RunSpeed == nil || *tuning.Controller.RunSpeed != 321 {
			t.Fatalf("unexpected reloaded tuning: %+v", tuning)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for reload")
	}
}
