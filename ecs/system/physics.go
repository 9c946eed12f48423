package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ninjaroll/common"
	"github.com/milk9111/ninjaroll/ecs"
	"github.com/milk9111/ninjaroll/ecs/component"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeListener
)

// Hit is the first shape a ray met.
type Hit struct {
	Entity   ecs.Entity
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
}

// SpatialQuery is the read-only query surface of the physics engine.
type SpatialQuery interface {
	Raycast(origin, dir cp.Vector, maxDist float64, mask component.Layer) (Hit, bool)
	OverlapCircle(origin cp.Vector, radius float64, mask component.Layer) []ecs.Entity
}

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	world         *ecs.World

	entities map[ecs.Entity]*bodyInfo
	owners   map[*cp.Shape]ecs.Entity

	root       *cp.Body
	rootEntity ecs.Entity
}

type bodyInfo struct {
	body     *cp.Body
	adapter  *cpBody
	shapes   []*cp.Shape
	static   bool
	onRoot   bool
	sensor   bool
	listener bool
	local    cp.Vector
}

var _ SpatialQuery = (*PhysicsSystem)(nil)

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		owners:   make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Reset drops every body so a rebuilt level starts from an empty space.
func (ps *PhysicsSystem) Reset() {
	if ps == nil {
		return
	}
	ps.space = newSpace()
	ps.handlersReady = false
	ps.entities = make(map[ecs.Entity]*bodyInfo)
	ps.owners = make(map[*cp.Shape]ecs.Entity)
	ps.root = nil
	ps.rootEntity = 0
}

// Sync creates bodies for new entities without stepping the simulation.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.Reset()
	}
	ps.ensureHandlers()
	ps.syncEntities(w)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)

	dt := w.Delta()
	if dt <= 0 {
		return
	}
	ps.world = w
	ps.space.Step(dt)
	ps.world = nil

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewWildcardCollisionHandler(collisionTypeListener)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		kind := component.ContactEnter
		a, b := arb.Shapes()
		if a.Sensor() || b.Sensor() {
			kind = component.ContactTrigger
		}
		sys.recordContact(arb, kind)
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		a, b := arb.Shapes()
		if a.Sensor() || b.Sensor() || arb.IsFirstContact() {
			return true
		}
		sys.recordContact(arb, component.ContactStay)
		return true
	}

	ps.handlersReady = true
}

// recordContact queues the contact on the listener side of the arbiter. The
// normal handed to the listener points from the other shape toward it.
func (ps *PhysicsSystem) recordContact(arb *cp.Arbiter, kind component.ContactKind) {
	a, b := arb.Shapes()
	n := arb.Normal()
	if ps.pushContact(a, b, n.Neg(), kind) {
		return
	}
	ps.pushContact(b, a, n, kind)
}

func (ps *PhysicsSystem) pushContact(self, other *cp.Shape, normal cp.Vector, kind component.ContactKind) bool {
	w := ps.world
	if w == nil {
		return false
	}
	e, ok := ps.owners[self]
	if !ok {
		return false
	}
	info := ps.entities[e]
	if info == nil || !info.listener {
		return false
	}
	queue, ok := ecs.Get(w, e, component.ContactQueueComponent.Kind())
	if !ok {
		return false
	}
	otherEntity := ps.owners[other]
	layer, tags := describe(w, otherEntity)
	queue.Push(component.Contact{
		Kind:     kind,
		Other:    uint64(otherEntity),
		Layer:    layer,
		Tags:     tags,
		Normal:   normal,
		Velocity: self.Body().Velocity(),
	})
	return true
}

// describe resolves the layer and tags of e. Inactive hazards report
// without their hazard bits.
func describe(w *ecs.World, e ecs.Entity) (component.Layer, component.Tag) {
	layer := component.LayerDefault
	var tags component.Tag
	if cl, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok && cl.Category != component.LayerNone {
		layer = cl.Category
	}
	if t, ok := ecs.Get(w, e, component.TagsComponent.Kind()); ok {
		tags = t.Set
	}
	if hz, ok := ecs.Get(w, e, component.HazardComponent.Kind()); ok && !hz.Active {
		layer &^= component.LayerHazard
		tags &^= component.TagHazard | component.TagTrap
	}
	return layer, tags
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)
	ps.syncRoot(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if e == ps.rootEntity {
			return
		}
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil && info.adapter != nil {
				bodyComp.Body = info.adapter
			}
			return
		}

		cl, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		listener := ecs.Has(w, e, component.ContactQueueComponent.Kind())
		gravity := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			gravity = gs.Scale
		}
		info := ps.createBodyInfo(transform, bodyComp, cl, listener, gravity)
		if info == nil {
			return
		}
		ps.entities[e] = info
		for _, shape := range info.shapes {
			ps.owners[shape] = e
		}
		bodyComp.Body = info.adapter
		if len(info.shapes) > 0 {
			bodyComp.Shape = info.shapes[0]
		}
		if launch, ok := ecs.Get(w, e, component.LaunchComponent.Kind()); ok {
			info.adapter.SetVelocity(launch.Velocity)
			ecs.Remove(w, e, component.LaunchComponent.Kind())
		}
	})
}

// syncRoot creates the kinematic body that carries every static shape of a
// rotating level. Without a level root, statics live on the space's static
// body.
func (ps *PhysicsSystem) syncRoot(w *ecs.World) {
	e, ok := ecs.First(w, component.LevelRootTagComponent.Kind())
	if !ok {
		return
	}
	if ps.root != nil && e == ps.rootEntity {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	ps.space.AddBody(body)
	ps.root = body
	ps.rootEntity = e

	adapter := newCPBody(body, nil, nil)
	ps.entities[e] = &bodyInfo{body: body, adapter: adapter}
	if bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		bodyComp.Body = adapter
	}
	log.Printf("physics: level root %d at (%.2f, %.2f)", e, transform.X, transform.Y)
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, cl *component.CollisionLayer, listener bool, gravityScale float64) *bodyInfo {
	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		width, height = 1, 1
	}

	filter := shapeFilter(cl)
	collisionType := collisionTypeSolid
	if listener {
		collisionType = collisionTypeListener
	}
	center := cp.Vector{X: transform.X, Y: transform.Y}
	info := &bodyInfo{sensor: bodyComp.Sensor, listener: listener}

	finish := func(shape *cp.Shape) {
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionType)
		shape.SetSensor(bodyComp.Sensor)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	if bodyComp.Kind == component.BodyStatic {
		host := ps.space.StaticBody
		local := center
		if ps.root != nil {
			host = ps.root
			local = ps.root.WorldToLocal(center)
			info.onRoot = true
		}
		info.static = true
		info.body = host
		info.local = local

		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(host, radius, local)
		} else {
			bb := cp.BB{L: local.X - width/2, B: local.Y - height/2, R: local.X + width/2, T: local.Y + height/2}
			shape = cp.NewBox2(host, bb, 0)
		}
		finish(shape)
		info.adapter = newCPBody(nil, info.shapes, []cp.ShapeFilter{filter})
		return info
	}

	var body *cp.Body
	if bodyComp.Kind == component.BodyKinematic {
		body = cp.NewKinematicBody()
	} else {
		mass := bodyComp.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := math.Inf(1)
		if !bodyComp.FixedAngle {
			if radius > 0 {
				moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
			} else {
				moment = cp.MomentForBox(mass, width, height)
			}
		}
		body = cp.NewBody(mass, moment)
		if scale := gravityScale; scale != 1 {
			body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
				cp.BodyUpdateVelocity(body, gravity.Mult(scale), damping, dt)
			})
		}
	}
	body.SetPosition(center)
	body.SetAngle(transform.Rotation)
	ps.space.AddBody(body)
	info.body = body

	if radius > 0 {
		finish(cp.NewCircle(body, radius, cp.Vector{}))
	} else {
		finish(cp.NewBox(body, width, height, 0))
	}
	info.adapter = newCPBody(body, info.shapes, []cp.ShapeFilter{filter})
	return info
}

func shapeFilter(cl *component.CollisionLayer) cp.ShapeFilter {
	category, mask := component.LayerDefault, component.LayerAll
	if cl != nil {
		if cl.Category != component.LayerNone {
			category = cl.Category
		}
		if cl.Mask != component.LayerNone {
			mask = cl.Mask
		}
	}
	return cp.ShapeFilter{Group: 0, Categories: uint(category), Mask: uint(mask)}
}

func queryFilter(mask component.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: 0, Categories: ^uint(0), Mask: uint(mask)}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		switch {
		case info.onRoot && ps.root != nil:
			pos := ps.root.LocalToWorld(info.local)
			transform.X, transform.Y = pos.X, pos.Y
			transform.Rotation = ps.root.Angle()
		case info.static:
		case info.body != nil:
			pos := info.body.Position()
			transform.X, transform.Y = pos.X, pos.Y
			transform.Rotation = info.body.Angle()
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
			delete(ps.owners, shape)
		}
		if info.body != nil && !info.static && info.body != ps.space.StaticBody {
			ps.space.RemoveBody(info.body)
		}
		if e == ps.rootEntity {
			ps.root = nil
			ps.rootEntity = 0
		}
		delete(ps.entities, e)
	}
}

// Raycast returns the first live entity whose shape the segment
// origin..origin+dir*maxDist meets within mask.
func (ps *PhysicsSystem) Raycast(origin, dir cp.Vector, maxDist float64, mask component.Layer) (Hit, bool) {
	if ps == nil || ps.space == nil || maxDist <= 0 {
		return Hit{}, false
	}
	dir = common.Normalize(dir)
	if dir == (cp.Vector{}) {
		return Hit{}, false
	}
	end := origin.Add(dir.Mult(maxDist))
	filter := queryFilter(mask)
	info := ps.space.SegmentQueryFirst(origin, end, 0, filter)
	if info.Shape == nil {
		return Hit{}, false
	}
	return Hit{
		Entity:   ps.owners[info.Shape],
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxDist,
	}, true
}

// OverlapCircle lists the entities whose shapes lie within radius of origin.
// Each entity appears once.
func (ps *PhysicsSystem) OverlapCircle(origin cp.Vector, radius float64, mask component.Layer) []ecs.Entity {
	if ps == nil || ps.space == nil || radius < 0 {
		return nil
	}
	filter := queryFilter(mask)
	seen := make(map[ecs.Entity]struct{})
	var out []ecs.Entity
	ps.space.BBQuery(cp.NewBBForCircle(origin, radius), filter, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(origin).Distance > radius {
			return
		}
		e, ok := ps.owners[shape]
		if !ok {
			return
		}
		if _, dup := seen[e]; dup {
			return
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}, nil)
	return out
}

// BodyOf returns the physics body of e, if it has one.
func BodyOf(w *ecs.World, e ecs.Entity) (component.Body, bool) {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || bodyComp.Body == nil {
		return nil, false
	}
	return bodyComp.Body, true
}
