package component

import "github.com/jakecoffman/cp"

type ContactKind int

const (
	ContactEnter ContactKind = iota
	ContactStay
	ContactTrigger
)

func (k ContactKind) String() string {
	switch k {
	case ContactEnter:
		return "enter"
	case ContactStay:
		return "stay"
	case ContactTrigger:
		return "trigger"
	}
	return "unknown"
}

// Contact is one collision or trigger notification. Normal points away from
// the other object toward the receiver. Velocity is the receiver's velocity
// before the solver ran.
type Contact struct {
	Kind     ContactKind
	Other    uint64
	Layer    Layer
	Tags     Tag
	Normal   cp.Vector
	Velocity cp.Vector
}

// ImpactSpeed is how fast the receiver moved into the surface.
func (c Contact) ImpactSpeed() float64 {
	return c.Normal.Neg().Dot(c.Velocity)
}

// ContactQueue buffers contacts reported during a physics step until the
// classifier drains them in the same tick.
type ContactQueue struct {
	Items []Contact
}

func (q *ContactQueue) Push(c Contact) {
	q.Items = append(q.Items, c)
}

func (q *ContactQueue) Drain() []Contact {
	out := q.Items
	q.Items = nil
	return out
}

var ContactQueueComponent = NewComponent[ContactQueue]()
