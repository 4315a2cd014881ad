package physics

import (
	"log"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// World steps rigid bodies on a fixed timestep. It exposes the three pipeline
// stages the scheduler chains in order every fixed tick:
//
//	SyncBackend → StepSimulation → Writeback
//
// SyncBackend snapshots GameObject transforms and velocities into solver
// state, StepSimulation integrates and resolves that state without touching
// the scene, and Writeback publishes results back onto the GameObjects. The
// hand reconciliation step runs before SyncBackend, so velocities it assigns
// are picked up by the same tick's integration.
type World struct {
	Gravity  rl.Vector3
	Timestep float32
	Substeps int

	Dynamics   []*engine.GameObject
	Kinematics []*engine.GameObject
	Statics    []*engine.GameObject

	states []*bodyState

	// Collision tracking for enter/exit callbacks
	activeCollisions  map[collisionPair]bool
	currentCollisions map[collisionPair]bool
}

type bodyState struct {
	obj     *engine.GameObject
	rb      *components.Rigidbody
	capsule *components.CapsuleCollider
	sphere  *components.SphereCollider

	pos    rl.Vector3
	rot    rl.Quaternion
	linvel rl.Vector3
	angvel rl.Vector3
}

type collisionPair struct {
	a, b uint64 // GameObject UIDs, smaller first
}

func makePair(a, b *engine.GameObject) collisionPair {
	if a.UID > b.UID {
		a, b = b, a
	}
	return collisionPair{a: a.UID, b: b.UID}
}

const (
	DefaultTimestep = 1.0 / 60.0
	DefaultSubsteps = 1
)

func NewWorld() *World {
	return &World{
		Gravity:           rl.Vector3{X: 0, Y: -9.81, Z: 0},
		Timestep:          DefaultTimestep,
		Substeps:          DefaultSubsteps,
		Dynamics:          make([]*engine.GameObject, 0),
		Kinematics:        make([]*engine.GameObject, 0),
		Statics:           make([]*engine.GameObject, 0),
		activeCollisions:  make(map[collisionPair]bool),
		currentCollisions: make(map[collisionPair]bool),
	}
}

// AddObject registers a GameObject with the world, classified by its
// rigidbody type. Objects without a rigidbody are treated as static scenery.
func (w *World) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	switch {
	case rb == nil || rb.Type == components.BodyFixed:
		w.Statics = append(w.Statics, g)
	case rb.Type == components.BodyKinematic:
		w.Kinematics = append(w.Kinematics, g)
	default:
		w.Dynamics = append(w.Dynamics, g)
	}
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for _, list := range []*[]*engine.GameObject{&w.Dynamics, &w.Kinematics, &w.Statics} {
		for i, obj := range *list {
			if obj == g {
				*list = append((*list)[:i], (*list)[i+1:]...)
				return
			}
		}
	}
}

// DynamicBodyCount returns the number of simulated dynamic bodies.
func (w *World) DynamicBodyCount() int {
	return len(w.Dynamics)
}

// SyncBackend snapshots the scene into solver state. Runs after the
// reconciliation step has written desired velocities.
func (w *World) SyncBackend() {
	if cap(w.states) < len(w.Dynamics) {
		w.states = make([]*bodyState, 0, len(w.Dynamics))
	}
	w.states = w.states[:0]

	for _, obj := range w.Dynamics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil {
			continue
		}
		w.states = append(w.states, &bodyState{
			obj:     obj,
			rb:      rb,
			capsule: engine.GetComponent[*components.CapsuleCollider](obj),
			sphere:  engine.GetComponent[*components.SphereCollider](obj),
			pos:     obj.Transform.Position,
			rot:     obj.Transform.Rotation,
			linvel:  rb.Velocity,
			angvel:  rb.AngularVelocity,
		})
	}
}

// StepSimulation integrates velocities and resolves collisions on the
// snapshot taken by SyncBackend. The scene is not touched until Writeback.
func (w *World) StepSimulation() {
	w.currentCollisions = make(map[collisionPair]bool)

	substeps := w.Substeps
	if substeps < 1 {
		substeps = 1
	}
	dt := w.Timestep / float32(substeps)

	for step := 0; step < substeps; step++ {
		for _, s := range w.states {
			if s.rb.UseGravity {
				s.linvel = rl.Vector3Add(s.linvel, rl.Vector3Scale(w.Gravity, dt))
			}
			s.pos = rl.Vector3Add(s.pos, rl.Vector3Scale(s.linvel, dt))
			s.rot = integrateOrientation(s.rot, s.angvel, dt)
		}

		// Narrow phase over all pairs. Body counts stay in the tens here
		// (26 joints per hand), so no broad phase is needed.
		for i := 0; i < len(w.states); i++ {
			for j := i + 1; j < len(w.states); j++ {
				w.resolveDynamicPair(w.states[i], w.states[j])
			}
		}
		for _, s := range w.states {
			for _, static := range w.Statics {
				w.resolveStatic(s, static)
			}
		}
	}
}

// Writeback publishes solver results onto the GameObjects and dispatches
// collision enter/exit callbacks. Runs before transform propagation.
func (w *World) Writeback() {
	for _, s := range w.states {
		s.obj.Transform.Position = s.pos
		s.obj.Transform.Rotation = s.rot
		s.rb.Velocity = s.linvel
		s.rb.AngularVelocity = s.angvel
	}
	w.dispatchCollisionCallbacks()
}

// Step runs the whole pipeline once. Headless runs and tests use it; the
// interactive app drives the three stages through the fixed schedule instead.
func (w *World) Step() {
	w.SyncBackend()
	w.StepSimulation()
	w.Writeback()
}

func (w *World) recordCollision(a, b *engine.GameObject) {
	w.currentCollisions[makePair(a, b)] = true
}

func (w *World) dispatchCollisionCallbacks() {
	lookup := func(uid uint64) *engine.GameObject {
		for _, s := range w.states {
			if s.obj.UID == uid {
				return s.obj
			}
		}
		for _, g := range w.Statics {
			if g.UID == uid {
				return g
			}
		}
		return nil
	}

	for pair := range w.currentCollisions {
		if !w.activeCollisions[pair] {
			a, b := lookup(pair.a), lookup(pair.b)
			if a == nil || b == nil {
				log.Printf("Physics: collision pair %v references removed object", pair)
				continue
			}
			notifyCollisionEnter(a, b)
			notifyCollisionEnter(b, a)
		}
	}
	for pair := range w.activeCollisions {
		if !w.currentCollisions[pair] {
			a, b := lookup(pair.a), lookup(pair.b)
			if a == nil || b == nil {
				continue
			}
			notifyCollisionExit(a, b)
			notifyCollisionExit(b, a)
		}
	}
	w.activeCollisions = w.currentCollisions
}

func notifyCollisionEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionEnter(other)
		}
	}
}

func notifyCollisionExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.CollisionHandler); ok {
			handler.OnCollisionExit(other)
		}
	}
}
