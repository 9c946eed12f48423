package component

// ActorState is the life state of an actor. Dead is terminal until an
// explicit reset.
type ActorState int

const (
	ActorAlive ActorState = iota
	ActorDead
)

func (s ActorState) String() string {
	if s == ActorDead {
		return "dead"
	}
	return "alive"
}

// Actor is the per-actor aggregate: life state, grounded flag and the spawn
// point used by resets.
type Actor struct {
	State    ActorState
	Grounded bool
	SpawnX   float64
	SpawnY   float64
	// Debug enables verbose logging for this actor.
	Debug bool
}

func (a *Actor) Alive() bool {
	return a != nil && a.State == ActorAlive
}

var ActorComponent = NewComponent[Actor]()

// GroundProbe configures the three downward probes used for grounding.
type GroundProbe struct {
	Distance float64
	Offset   float64
	Inset    float64
	Mask     Layer
}

var GroundProbeComponent = NewComponent[GroundProbe]()
