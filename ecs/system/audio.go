package system

import (
	"log"

	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

// AudioSystem plays the clips requested this frame and flushes animator
// triggers to the playback layer.
type AudioSystem struct {
	// Debug logs every fired animator trigger.
	Debug bool
}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}
			audioComp.Play[i] = false

			player := audioComp.Players[i]
			if player == nil {
				continue
			}
			if i < len(audioComp.Volume) {
				vol := audioComp.Volume[i]
				if i < len(audioComp.Gain) {
					vol *= audioComp.Gain[i]
				}
				player.SetVolume(vol)
			}
			if err := player.Rewind(); err != nil {
				log.Printf("audio: rewind %s: %v", audioComp.Names[i], err)
				continue
			}
			player.Play()
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}
			if player := audioComp.Players[i]; player != nil && player.IsPlaying() {
				player.Pause()
			}
			audioComp.Stop[i] = false
		}
	})

	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		for _, trigger := range anim.ConsumeTriggers() {
			if a.Debug {
				log.Printf("animator: entity %d trigger %s", e, trigger)
			}
		}
	})
}
