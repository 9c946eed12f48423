package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/ninjaroll/assets"
	"github.com/milk9111/ninjaroll/ecs/component"
	"github.com/milk9111/ninjaroll/prefabs"
)

// AudioLoader creates a player for an embedded clip file.
type AudioLoader func(file string) (*audio.Player, error)

var defaultAudioLoader AudioLoader = assets.LoadAudioPlayer

func buildAudioComponent(audioSpecs []prefabs.AudioSpec, load AudioLoader) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	gain := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		if clip.Name == "" {
			return nil, fmt.Errorf("audio clip %d has no name", i)
		}
		var player *audio.Player
		if load != nil {
			p, err := load(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			player = p
		}
		level := clip.Volume
		if level == 0 {
			level = 1
		}
		names = append(names, clip.Name)
		players = append(players, player)
		gain = append(gain, level)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Gain:    gain,
		Volume:  make([]float64, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
