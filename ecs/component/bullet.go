package component

import "github.com/jakecoffman/cp"

// Bullet is a projectile destroyed on contact or when its lifetime ends.
type Bullet struct {
	Lifetime float64
	// IgnoreMask lists layers the bullet passes through.
	IgnoreMask Layer
}

var BulletComponent = NewComponent[Bullet]()

// Launch is an initial velocity for an entity whose body does not exist yet.
type Launch struct {
	Velocity cp.Vector
}

var LaunchComponent = NewComponent[Launch]()
