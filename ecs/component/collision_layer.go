package component

import (
	"fmt"
	"strings"
)

// Layer is a collision category bit. Layers are resolved from names once at
// build time; systems only ever compare masks.
type Layer uint32

const (
	LayerDefault Layer = 1 << iota
	LayerPlayer
	LayerEnemy
	LayerPlatform
	LayerHazard
	LayerBullet
	LayerGoal

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

var layerNames = map[string]Layer{
	"default":  LayerDefault,
	"player":   LayerPlayer,
	"enemy":    LayerEnemy,
	"platform": LayerPlatform,
	"hazard":   LayerHazard,
	"bullet":   LayerBullet,
	"goal":     LayerGoal,
}

// Has reports whether any bit of mask is set in l. An empty mask never matches.
func (l Layer) Has(mask Layer) bool {
	return mask != 0 && l&mask != 0
}

var layerOrder = []string{"default", "player", "enemy", "platform", "hazard", "bullet", "goal"}

// Names lists the named layers set in l; LayerAll is ["all"].
func (l Layer) Names() []string {
	if l == LayerAll {
		return []string{"all"}
	}
	var parts []string
	for _, name := range layerOrder {
		if l&layerNames[name] != 0 {
			parts = append(parts, name)
		}
	}
	return parts
}

func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	parts := l.Names()
	if len(parts) == 0 {
		return fmt.Sprintf("layer(%d)", uint32(l))
	}
	return strings.Join(parts, "|")
}

// ParseLayer resolves a single layer name.
func ParseLayer(name string) (Layer, error) {
	l, ok := layerNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return LayerNone, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	return l, nil
}

// ParseLayerMask resolves a list of layer names into a mask. "all" selects every layer.
func ParseLayerMask(names []string) (Layer, error) {
	var mask Layer
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			return LayerAll, nil
		}
		l, err := ParseLayer(name)
		if err != nil {
			return LayerNone, err
		}
		mask |= l
	}
	return mask, nil
}

// CollisionLayer declares an entity's collision category and the categories
// it collides with. A zero Mask collides with everything.
type CollisionLayer struct {
	Category Layer
	Mask     Layer
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
