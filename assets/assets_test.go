package assets

import "testing"

func TestSandboxLevel(t *testing.T) {
	lvl, err := LoadLevel("sandbox")
	if err != nil {
		t.Fatalf("load sandbox: %v", err)
	}
	if _, err := lvl.Spawn(); err != nil {
		t.Fatalf("sandbox has no spawn: %v", err)
	}
	if len(lvl.GroundRects) == 0 || len(lvl.WaterZones) == 0 || len(lvl.Orbs) == 0 {
		t.Fatalf("sandbox is missing content: %d ground, %d water, %d orbs",
			len(lvl.GroundRects), len(lvl.WaterZones), len(lvl.Orbs))
	}
}

func TestLoadLevelsListsSandbox(t *testing.T) {
	levels, names, err := LoadLevels()
	if err != nil {
		t.Fatalf("load levels: %v", err)
	}
	if levels["sandbox"] == nil {
		t.Fatalf("sandbox not in %v", names)
	}
}
