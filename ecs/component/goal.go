package component

// Goal completes the level when the player reaches it with no enemies left.
type Goal struct {
	// NextLevel is an explicit level index; negative means the next one.
	NextLevel       int
	TransitionDelay float64

	Completed bool
	Requested bool
	Timer     float64
}

var GoalComponent = NewComponent[Goal]()
