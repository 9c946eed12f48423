package ecs

type System interface {
	Update(w *World)
}

// Phase orders groups of systems within one tick.
type Phase int

const (
	// PhaseFixed holds the systems coupled to the physics step: movement
	// forces, the step itself and contact handling.
	PhaseFixed Phase = iota
	// PhaseFrame holds gameplay reactions to the settled physics state.
	PhaseFrame

	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseFixed:
		return "fixed"
	case PhaseFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Scheduler runs its phases in order, and the systems of each phase in the
// order they were added.
type Scheduler struct {
	phases [phaseCount][]System
}

// NewScheduler returns a scheduler with systems in the fixed phase.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	s.AddTo(PhaseFixed, systems...)
	return s
}

// Add appends system to the fixed phase.
func (s *Scheduler) Add(system System) {
	s.AddTo(PhaseFixed, system)
}

// AddTo appends systems to phase. Nil systems and unknown phases are ignored.
func (s *Scheduler) AddTo(phase Phase, systems ...System) {
	if phase < 0 || phase >= phaseCount {
		return
	}
	for _, system := range systems {
		if system == nil {
			continue
		}
		s.phases[phase] = append(s.phases[phase], system)
	}
}

// Update runs one tick: every phase, in order.
func (s *Scheduler) Update(w *World) {
	for phase := Phase(0); phase < phaseCount; phase++ {
		s.UpdatePhase(w, phase)
	}
}

// UpdatePhase runs only the systems of phase.
func (s *Scheduler) UpdatePhase(w *World, phase Phase) {
	if phase < 0 || phase >= phaseCount {
		return
	}
	for _, system := range s.phases[phase] {
		system.Update(w)
	}
}

// Systems lists every system in run order.
func (s *Scheduler) Systems() []System {
	var systems []System
	for _, phase := range s.phases {
		systems = append(systems, phase...)
	}
	return systems
}

// PhaseSystems lists the systems of one phase.
func (s *Scheduler) PhaseSystems(phase Phase) []System {
	if phase < 0 || phase >= phaseCount {
		return nil
	}
	return append([]System(nil), s.phases[phase]...)
}
