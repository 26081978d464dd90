package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/gravitylegacy/common"
	"github.com/milk9111/gravitylegacy/ecs"
	"github.com/milk9111/gravitylegacy/ecs/component"
	"github.com/milk9111/gravitylegacy/geom"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeHazard
	collisionTypeGoal
	collisionTypeProp
)

const boundsThickness = 1.0

// GravityWriter receives the world gravity vector.
type GravityWriter interface {
	SetGravity(g cp.Vector)
}

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	gravity       cp.Vector

	entities     map[ecs.Entity]*bodyInfo
	shapes       map[*cp.Shape]ecs.Entity
	playerShapes map[*cp.Shape]ecs.Entity
	pending      []ecs.CollisionEvent
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

func NewPhysicsSystem(gravity cp.Vector) *PhysicsSystem {
	ps := &PhysicsSystem{
		gravity:      gravity,
		entities:     make(map[ecs.Entity]*bodyInfo),
		shapes:       make(map[*cp.Shape]ecs.Entity),
		playerShapes: make(map[*cp.Shape]ecs.Entity),
	}
	ps.space = ps.newSpace()
	return ps
}

func (ps *PhysicsSystem) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(ps.gravity)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SetGravity implements GravityWriter.
func (ps *PhysicsSystem) SetGravity(g cp.Vector) {
	if ps == nil {
		return
	}
	ps.gravity = g
	if ps.space != nil {
		ps.space.SetGravity(g)
	}
}

func (ps *PhysicsSystem) Gravity() cp.Vector {
	if ps == nil {
		return cp.Vector{}
	}
	return ps.gravity
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	if ps.space == nil {
		ps.space = ps.newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	ps.space.Step(common.StepSeconds)

	ps.syncTransforms(w)
	ps.flushEvents(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}
	for _, other := range []cp.CollisionType{collisionTypeSolid, collisionTypeHazard, collisionTypeGoal} {
		h := ps.space.NewCollisionHandler(collisionTypePlayer, other)
		h.UserData = ps
		h.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
				sys.recordContact(arb, ecs.CollisionBegin)
			}
			return true
		}
		h.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
			if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
				sys.recordContact(arb, ecs.CollisionEnd)
			}
		}
	}
	ps.handlersReady = true
}

// recordContact queues an event with the player as A and the normal pointing from
// the player to the other shape.
func (ps *PhysicsSystem) recordContact(arb *cp.Arbiter, kind ecs.CollisionEventKind) {
	shapeA, shapeB := arb.Shapes()
	n := arb.Normal()
	a, playerIsA := ps.playerShapes[shapeA]
	if !playerIsA {
		var okB bool
		a, okB = ps.playerShapes[shapeB]
		if !okB {
			return
		}
		shapeA, shapeB = shapeB, shapeA
		n = n.Neg()
	}
	b, ok := ps.shapes[shapeB]
	if !ok {
		return
	}
	ps.pending = append(ps.pending, ecs.CollisionEvent{
		Kind:    kind,
		A:       a,
		B:       b,
		NormalX: n.X,
		NormalY: n.Y,
		ABox:    boxFromBB(shapeA.BB()),
		BBox:    boxFromBB(shapeB.BB()),
	})
}

func boxFromBB(bb cp.BB) geom.Box {
	return geom.BoxFromBounds(bb.L, bb.B, bb.R, bb.T)
}

func (ps *PhysicsSystem) flushEvents(w *ecs.World) {
	for _, evt := range ps.pending {
		w.Events().Push(ecs.Event{Type: ecs.EventCollision, Data: evt})
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil || bodyComp.Shape == nil {
				bodyComp.Body = info.body
				if len(info.shapes) > 0 {
					bodyComp.Shape = info.shapes[0]
				}
			}
			continue
		}

		collisionType := collisionTypeFor(w, e)
		info := ps.createBodyInfo(*transform, *bodyComp, collisionType)
		if info == nil {
			continue
		}
		for _, shape := range info.shapes {
			applyCollisionLayer(w, e, shape)
			ps.shapes[shape] = e
			if collisionType == collisionTypePlayer {
				ps.playerShapes[shape] = e
			}
		}

		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func collisionTypeFor(w *ecs.World, e ecs.Entity) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return collisionTypePlayer
	case ecs.Has(w, e, component.HazardComponent.Kind()):
		return collisionTypeHazard
	case ecs.Has(w, e, component.GoalComponent.Kind()):
		return collisionTypeGoal
	case ecs.Has(w, e, component.SolidTagComponent.Kind()):
		return collisionTypeSolid
	default:
		return collisionTypeProp
	}
}

func applyCollisionLayer(w *ecs.World, e ecs.Entity, shape *cp.Shape) {
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return
	}
	category := layer.Category
	if category == 0 {
		category = component.CategoryWorld
	}
	mask := layer.Mask
	if mask == 0 {
		mask = ^uint32(0)
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask)))
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, collisionType cp.CollisionType) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = common.DefaultCellSize
		height = common.DefaultCellSize
	}

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		configureShape(shape, bodyComp, collisionType)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, width, height)
	if bodyComp.FixedRotation {
		moment = cp.INFINITY
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetAngularVelocity(0)

	shape := cp.NewBox(body, width, height, 0)
	configureShape(shape, bodyComp, collisionType)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shapes = []*cp.Shape{shape}
	return info
}

func configureShape(shape *cp.Shape, bodyComp component.PhysicsBody, collisionType cp.CollisionType) {
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionType)
	shape.SetSensor(bodyComp.Sensor)
}

// syncWorldBounds closes the level with four static segments once per bounds entity.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	if ps.space == nil || w == nil {
		return
	}
	boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // bottom
		{a: cp.Vector{X: 0, Y: worldH}, b: cp.Vector{X: worldW, Y: worldH}}, // top
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, boundsThickness)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
		ps.shapes[shape] = boundsEntity
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	if w == nil {
		return
	}
	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil || bodyComp.Static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) {
			if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.LevelBoundsComponent.Kind()) {
				continue
			}
		}

		for _, shape := range info.shapes {
			if shape == nil || ps.space == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.shapes, shape)
			delete(ps.playerShapes, shape)
		}
		if info.body != nil && !info.static && ps.space != nil {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
	}
}

// BodyCount returns the number of entities with live physics state.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}
