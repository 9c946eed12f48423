package component

type ParamKind int

const (
	ParamBool ParamKind = iota
	ParamFloat
	ParamTrigger
)

// Animator holds animation parameters for an external playback layer. The
// parameter set is fixed when the animator is built; writes to parameters
// it does not declare are ignored.
type Animator struct {
	params   map[string]ParamKind
	bools    map[string]bool
	floats   map[string]float64
	triggers []string
}

func NewAnimator(params map[string]ParamKind) *Animator {
	a := &Animator{
		params: make(map[string]ParamKind, len(params)),
		bools:  make(map[string]bool),
		floats: make(map[string]float64),
	}
	for name, kind := range params {
		a.params[name] = kind
	}
	return a
}

// Has reports whether name is declared with the given kind.
func (a *Animator) Has(name string, kind ParamKind) bool {
	if a == nil {
		return false
	}
	k, ok := a.params[name]
	return ok && k == kind
}

func (a *Animator) SetBool(name string, v bool) {
	if a.Has(name, ParamBool) {
		a.bools[name] = v
	}
}

func (a *Animator) SetFloat(name string, v float64) {
	if a.Has(name, ParamFloat) {
		a.floats[name] = v
	}
}

func (a *Animator) SetTrigger(name string) {
	if a.Has(name, ParamTrigger) {
		a.triggers = append(a.triggers, name)
	}
}

func (a *Animator) Bool(name string) bool {
	if a == nil {
		return false
	}
	return a.bools[name]
}

func (a *Animator) Float(name string) float64 {
	if a == nil {
		return 0
	}
	return a.floats[name]
}

// ConsumeTriggers returns and clears the fired triggers.
func (a *Animator) ConsumeTriggers() []string {
	if a == nil || len(a.triggers) == 0 {
		return nil
	}
	out := a.triggers
	a.triggers = nil
	return out
}

var AnimatorComponent = NewComponent[Animator]()
