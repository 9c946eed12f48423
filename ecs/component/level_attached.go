package component

// LevelAttached marks an entity whose scripted motion (motion cycle, patrol
// waypoints, shooter aim) is expressed in the level root's frame, so it
// turns with the level.
type LevelAttached struct{}

var LevelAttachedComponent = NewComponent[LevelAttached]()
