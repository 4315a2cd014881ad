package hand

import (
	"github.com/0xtito/xr-hand/internal/engine"
)

// TrackedJoint marks a kinematic entity whose transform the tracking input
// layer overwrites every frame.
type TrackedJoint struct {
	engine.BaseComponent
	Hand   Hand
	Bone   Bone
	Radius float32 // start-joint radius, used to scale the visual
}

// BoneInitState is the two-state lifecycle of a dynamic joint body's
// collider.
type BoneInitState int

const (
	BoneUninitialized BoneInitState = iota
	BoneInitialized
)

// BoneBody marks a dynamic rigid body representing one hand bone. State
// flips to BoneInitialized when the reconciliation step has sized the
// collider from the first measured bone length; the collider is never
// resized after that.
type BoneBody struct {
	engine.BaseComponent
	Hand  Hand
	Bone  Bone
	State BoneInitState
}
