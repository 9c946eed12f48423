package component

// GravityScale scales world gravity for a dynamic body. Bodies without one
// fall at full gravity; bullets use 0.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
