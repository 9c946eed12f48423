package component

import "github.com/jakecoffman/cp"

// Shooter fires bullets on a fixed interval.
type Shooter struct {
	Interval    float64
	BulletSpeed float64
	Direction   cp.Vector
	ShootOffset cp.Vector
	Prefab      string

	Timer       float64
	Initialized bool
}

var ShooterComponent = NewComponent[Shooter]()
