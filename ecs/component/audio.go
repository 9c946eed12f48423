package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named one-shot clips. A nil player is a missing clip and plays
// nothing.
type Audio struct {
	Names   []string
	Players []*audio.Player
	// Gain is the per-clip tuning level; requested volumes are scaled by it.
	Gain   []float64
	Volume []float64
	Play   []bool
	Stop   []bool
}

// Request queues the named clip at volume. Unknown names are ignored.
func (a *Audio) Request(name string, volume float64) {
	if a == nil {
		return
	}
	for i, n := range a.Names {
		if n != name || i >= len(a.Play) {
			continue
		}
		a.Play[i] = true
		if i < len(a.Volume) {
			a.Volume[i] = volume
		}
		return
	}
}

// Requested reports whether the named clip is queued this frame.
func (a *Audio) Requested(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}

var AudioComponent = NewComponent[Audio]()
