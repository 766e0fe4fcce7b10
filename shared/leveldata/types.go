// Package leveldata provides TMX level parsing shared between the sandbox and
// the headless simulator.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "errors"

var ErrNoSpawn = errors.New("leveldata: level has no player spawn")

// Level holds all simulation-relevant data parsed from a TMX level file.
type Level struct {
	Name        string
	GroundRects []Rect
	WaterZones  []Rect
	Orbs        []OrbPoint
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a solid or trigger area in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// OrbPoint is an orb pickup placed in the level.
type OrbPoint struct {
	X, Y    float64
	Element string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the spawn with the lowest index.
func (l *Level) Spawn() (SpawnPoint, error) {
	if l == nil || len(l.SpawnPoints) == 0 {
		return SpawnPoint{}, ErrNoSpawn
	}
	best := l.SpawnPoints[0]
	for _, sp := range l.SpawnPoints[1:] {
		if sp.Index < best.Index {
			best = sp
		}
	}
	return best, nil
}
