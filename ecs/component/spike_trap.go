package component

import "fmt"

type SpikeBehavior int

const (
	SpikeTimedCycle SpikeBehavior = iota
	SpikePlayerProximity
	SpikeOneTimeTriggered
	SpikeAlwaysActive
)

var spikeBehaviorNames = map[string]SpikeBehavior{
	"timed_cycle":        SpikeTimedCycle,
	"player_proximity":   SpikePlayerProximity,
	"one_time_triggered": SpikeOneTimeTriggered,
	"always_active":      SpikeAlwaysActive,
}

func (b SpikeBehavior) String() string {
	for name, behavior := range spikeBehaviorNames {
		if behavior == b {
			return name
		}
	}
	return "timed_cycle"
}

// ParseSpikeBehavior resolves a behavior name. An empty name is SpikeTimedCycle.
func ParseSpikeBehavior(name string) (SpikeBehavior, error) {
	if name == "" {
		return SpikeTimedCycle, nil
	}
	b, ok := spikeBehaviorNames[name]
	if !ok {
		return SpikeTimedCycle, fmt.Errorf("component: unknown spike behavior %q", name)
	}
	return b, nil
}

// SpikeTrap extends and retracts a hazard.
type SpikeTrap struct {
	Behavior               SpikeBehavior
	ActivationDelay        float64
	RetractDelay           float64
	TimeBetweenActivations float64
	StartActive            bool
	DetectionRadius        float64

	Extended bool
	Timer    float64
	// ArmTimer counts down the activation delay; negative means not pending.
	ArmTimer float64
	// RetractTimer counts down a proximity retraction; negative means not pending.
	RetractTimer float64
	Initialized  bool
}

var SpikeTrapComponent = NewComponent[SpikeTrap]()
