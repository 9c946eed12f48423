package component

// Hazard marks an entity as lethal on contact while Active. Inactive hazards
// keep their collider but stop reporting as hazards.
type Hazard struct {
	Active bool
}

var HazardComponent = NewComponent[Hazard]()
