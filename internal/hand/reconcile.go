package hand

import (
	"fmt"
	"log"
	"strings"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MatchingMode selects how joint bodies chase their tracked targets.
type MatchingMode int

const (
	// VelocityMatching drives bodies by setting linear and angular velocity
	// each tick, so they interact with the scene instead of tunnelling
	// through it.
	VelocityMatching MatchingMode = iota
	// PositionMatching snaps body transforms onto the tracked pose directly.
	// Kept as a debugging mode; it defeats collision response.
	PositionMatching
)

func (m MatchingMode) String() string {
	if m == PositionMatching {
		return "position"
	}
	return "velocity"
}

// ParseMatchingMode parses the config/CLI spelling of a matching mode.
func ParseMatchingMode(s string) (MatchingMode, error) {
	switch strings.ToLower(s) {
	case "velocity", "":
		return VelocityMatching, nil
	case "position":
		return PositionMatching, nil
	}
	return VelocityMatching, fmt.Errorf("unknown matching mode %q", s)
}

// HandSelection limits reconciliation to one hand, or runs both.
type HandSelection int

const (
	BothHands HandSelection = iota
	LeftOnly
	RightOnly
)

func (s HandSelection) String() string {
	switch s {
	case LeftOnly:
		return "left"
	case RightOnly:
		return "right"
	}
	return "both"
}

// ParseHandSelection parses the config/CLI spelling of a hand selection.
func ParseHandSelection(s string) (HandSelection, error) {
	switch strings.ToLower(s) {
	case "both", "":
		return BothHands, nil
	case "left":
		return LeftOnly, nil
	case "right":
		return RightOnly, nil
	}
	return BothHands, fmt.Errorf("unknown hand selection %q", s)
}

func (s HandSelection) includes(h Hand) bool {
	switch s {
	case LeftOnly:
		return h == Left
	case RightOnly:
		return h == Right
	}
	return true
}

// Collider radius applied when a joint body's capsule is sized from its
// first measured bone length.
const reconcileBoneRadius = 0.010

// Reconciler drives dynamic joint bodies toward their tracked counterparts
// once per fixed tick, between the tracking update and the physics step.
type Reconciler struct {
	scene  *engine.Scene
	tables *Tables

	Matching MatchingMode
	Hands    HandSelection
	Timestep float32

	loggedWaiting bool
}

func NewReconciler(scene *engine.Scene, timestep float32) *Reconciler {
	return &Reconciler{scene: scene, Timestep: timestep}
}

// SetTables hands the reconciler the tracked entity tables. Until this is
// called, Step is a no-op: the tables' existence is the signal that both
// hands have been spawned.
func (r *Reconciler) SetTables(t *Tables) {
	r.tables = t
}

// Tables returns the tracked entity tables, or nil before SetTables.
func (r *Reconciler) Tables() *Tables {
	return r.tables
}

// Step runs one reconciliation pass over every dynamic joint body in the
// scene.
func (r *Reconciler) Step() {
	if r.tables == nil {
		if !r.loggedWaiting {
			log.Printf("hand: reconcile waiting for tracked entity tables")
			r.loggedWaiting = true
		}
		return
	}

	for _, obj := range r.scene.GameObjects {
		body := engine.GetComponent[*BoneBody](obj)
		if body == nil || !r.Hands.includes(body.Hand) {
			continue
		}
		r.reconcileBody(obj, body)
	}
}

func (r *Reconciler) reconcileBody(obj *engine.GameObject, body *BoneBody) {
	startUID, endUID, ok := r.tables.ForHand(body.Hand).BoneEntities(body.Bone)
	if !ok {
		// Wrist, palm and fingertips have no bone segment behind them.
		return
	}

	start := r.scene.FindByUID(startUID)
	end := r.scene.FindByUID(endUID)
	if start == nil || end == nil {
		return
	}

	startPos := start.Transform.Position
	endPos := end.Transform.Position
	direction := rl.Vector3Subtract(endPos, startPos)
	length := rl.Vector3Length(direction)
	if length < 1e-3 {
		// Collapsed segment this tick; leave the body untouched rather than
		// produce a degenerate orientation.
		return
	}

	if body.State == BoneUninitialized {
		capsule := engine.GetComponent[*components.CapsuleCollider](obj)
		if capsule != nil {
			capsule.SetSegment(rl.NewVector3(0, 0, 0), rl.NewVector3(0, 0, -length), reconcileBoneRadius)
		}
		body.State = BoneInitialized
		return
	}

	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil {
		return
	}

	desiredRot := LookRotation(startPos, endPos, rl.NewVector3(0, 1, 0))

	if r.Matching == PositionMatching {
		obj.Transform.Position = startPos
		obj.Transform.Rotation = desiredRot
		rb.Velocity = rl.NewVector3(0, 0, 0)
		rb.AngularVelocity = rl.NewVector3(0, 0, 0)
		return
	}

	dt := r.Timestep
	rb.Velocity = rl.Vector3Scale(rl.Vector3Subtract(startPos, obj.Transform.Position), 1/dt)

	bodyForward := obj.Transform.Forward()
	desiredForward := rl.Vector3RotateByQuaternion(rl.NewVector3(0, 0, -1), desiredRot)
	rb.AngularVelocity = rl.Vector3Scale(rl.Vector3CrossProduct(bodyForward, desiredForward), 1/dt)
}
