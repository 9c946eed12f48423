package component

// ContactRules configures how an actor's contacts are classified and what
// the kill and death handlers do.
type ContactRules struct {
	EnemyMask    Layer
	PlatformMask Layer
	HazardMask   Layer
	// DeathTags kill the actor on trigger even without a hazard layer.
	DeathTags        Tag
	BounceOffEnemies bool
	EnemyBounceForce float64
	// DetectionRadius is the enemy sweep radius. Zero derives it from the collider.
	DetectionRadius float64
	RespawnDelay    float64
}

var ContactRulesComponent = NewComponent[ContactRules]()

// ResetTimer counts down to a level reset after a death.
type ResetTimer struct {
	Remaining float64
}

var ResetTimerComponent = NewComponent[ResetTimer]()
