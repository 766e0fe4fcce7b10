package leveldata

import (
	"errors"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="5">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="terrain.png" width="16" height="16"/>
 </tileset>
 <layer id="1" name="ground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="Water">
  <object id="1" x="16" y="8" width="32" height="8"/>
 </objectgroup>
 <objectgroup id="3" name="Orbs">
  <object id="2" x="24" y="4">
   <properties>
    <property name="element" value="fire"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="3" x="40" y="16">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="4" x="8" y="16">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func TestLoadMergesGroundRuns(t *testing.T) {
	lvl, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []Rect{
		{X: 0, Y: 16, W: 16, H: 16},
		{X: 48, Y: 16, W: 16, H: 16},
		{X: 0, Y: 32, W: 64, H: 16},
	}
	if len(lvl.GroundRects) != len(want) {
		t.Fatalf("got %d ground rects, want %d: %+v", len(lvl.GroundRects), len(want), lvl.GroundRects)
	}
	for i, r := range want {
		if lvl.GroundRects[i] != r {
			t.Errorf("rect %d = %+v, want %+v", i, lvl.GroundRects[i], r)
		}
	}
	if lvl.MapWidth != 64 || lvl.MapHeight != 48 {
		t.Errorf("map size = %dx%d, want 64x48", lvl.MapWidth, lvl.MapHeight)
	}
	if lvl.Name != "test" {
		t.Errorf("name = %q", lvl.Name)
	}
}

func TestLoadObjectGroups(t *testing.T) {
	lvl, err := Load(testFS(), "levels/test.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(lvl.WaterZones) != 1 || lvl.WaterZones[0] != (Rect{X: 16, Y: 8, W: 32, H: 8}) {
		t.Errorf("water zones = %+v", lvl.WaterZones)
	}
	if len(lvl.Orbs) != 1 || lvl.Orbs[0].Element != "fire" {
		t.Errorf("orbs = %+v", lvl.Orbs)
	}

	spawn, err := lvl.Spawn()
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if spawn.Index != 0 || spawn.X != 8 {
		t.Errorf("spawn = %+v, want index 0 at x=8", spawn)
	}
}

func TestSpawnMissing(t *testing.T) {
	cases := []struct {
		name string
		lvl  *Level
	}{
		{"nil_level", nil},
		{"no_spawns", &Level{Name: "empty"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.lvl.Spawn(); !errors.Is(err, ErrNoSpawn) {
				t.Fatalf("err = %v, want ErrNoSpawn", err)
			}
		})
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("load all: %v", err)
	}
	if len(names) != 1 || names[0] != "test" || levels["test"] == nil {
		t.Fatalf("names = %v", names)
	}

	if _, _, err := LoadAll(testFS(), "missing"); err == nil {
		t.Fatalf("expected an error for a directory without levels")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(testFS(), "levels/nope.tmx"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
