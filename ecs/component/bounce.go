package component

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// CatchAllPolicy decides what happens to contacts that match no configured mask.
type CatchAllPolicy int

const (
	// CatchAllWall bounces off any non-Default layer, and off Default too
	// when Force is set.
	CatchAllWall CatchAllPolicy = iota
	// CatchAllIgnore drops unclassified contacts.
	CatchAllIgnore
	// CatchAllNonDefault bounces off non-Default layers only, even when forced.
	CatchAllNonDefault
)

var catchAllNames = map[string]CatchAllPolicy{
	"wall":        CatchAllWall,
	"ignore":      CatchAllIgnore,
	"non_default": CatchAllNonDefault,
}

func (p CatchAllPolicy) String() string {
	for name, policy := range catchAllNames {
		if policy == p {
			return name
		}
	}
	return "wall"
}

// ParseCatchAll resolves a catch-all policy name. An empty name is CatchAllWall.
func ParseCatchAll(name string) (CatchAllPolicy, error) {
	if name == "" {
		return CatchAllWall, nil
	}
	p, ok := catchAllNames[name]
	if !ok {
		return CatchAllWall, fmt.Errorf("component: unknown catch-all policy %q", name)
	}
	return p, nil
}

// WallBounce is the read-only bounce tuning of an actor.
type WallBounce struct {
	Enabled           bool
	MinForce          float64
	MaxForce          float64
	Multiplier        float64
	Deadzone          float64
	MaxBounceVelocity float64
	UpwardAssist      bool
	UpwardForce       float64
	Force             bool
	Cooldown          float64
	CatchAll          CatchAllPolicy
}

var WallBounceComponent = NewComponent[WallBounce]()

// BounceState caches the last bounce for cooldown and debug drawing.
type BounceState struct {
	LastWallNormal cp.Vector
	LastBounceTime float64
	LastIntensity  float64
	Bounced        bool
}

var BounceStateComponent = NewComponent[BounceState]()
