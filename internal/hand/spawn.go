package hand

import (
	"fmt"
	"log"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"
	"github.com/0xtito/xr-hand/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collision-filter groups. Each hand's joints share a membership group and
// exclude it from their own filter, so a hand never collides with itself or
// the floor while still hitting the scene and the other hand.
const (
	LeftHandGroup  = components.Group1
	RightHandGroup = components.Group2
	FloorGroup     = components.Group3
)

// Capsule seed dimensions used at spawn, before the first measured bone
// length replaces them.
const (
	spawnCapsuleHalfLength = 0.0575
)

// HandGroups returns the collision groups for one hand's joint bodies.
func HandGroups(h Hand) components.CollisionGroups {
	membership := RightHandGroup
	if h == Left {
		membership = LeftHandGroup
	}
	filter := components.GroupAll.Remove(membership).Remove(FloorGroup)
	return components.NewCollisionGroups(membership, filter)
}

// SpawnTrackedHands creates one kinematic tracked entity per joint per hand
// and records their UIDs in the hand entity tables. The returned Tables is
// the readiness signal: it exists only once both hands are fully processed,
// and must be treated as immutable from then on.
func SpawnTrackedHands(scene *engine.Scene, world *physics.World) *Tables {
	tables := &Tables{}

	for _, h := range Hands() {
		for _, bone := range AllBones() {
			startJoint, endJoint, hasSpan := SpanPoses(h, bone)

			obj := engine.NewGameObject(fmt.Sprintf("%v %v tracked", h, bone))
			if hasSpan {
				direction := rl.Vector3Subtract(endJoint.Position, startJoint.Position)
				obj.Transform.Position = direction
				obj.Transform.Rotation = startJoint.Orientation
			} else {
				// Terminal and root joints have no segment to measure; seed
				// them at the calibrated joint pose directly.
				joint := DefaultPose(h, JointIndex(bone))
				obj.Transform.Position = joint.Position
				obj.Transform.Rotation = joint.Orientation
				startJoint = joint
			}

			obj.AddComponent(&TrackedJoint{Hand: h, Bone: bone, Radius: startJoint.Radius})
			obj.AddComponent(components.NewSphereCollider(startJoint.Radius))

			rb := components.NewRigidbody(components.BodyKinematic)
			rb.UseGravity = false
			// Placeholder collider only; tracked joints never join the solver.
			rb.Groups = components.NewCollisionGroups(components.GroupNone, components.GroupNone)
			obj.AddComponent(rb)

			scene.AddGameObject(obj)
			world.AddObject(obj)
			tables.ForHand(h).set(bone, obj.UID)
		}
	}

	log.Printf("hand: tracked entity tables published (%d joints per hand)", JointCount)
	return tables
}

// SpawnPhysicsHands creates one dynamic rigid body per joint per hand,
// seeded from the calibration pose with a capsule collider and the hand's
// collision-filter groups.
func SpawnPhysicsHands(scene *engine.Scene, world *physics.World) {
	for _, h := range Hands() {
		groups := HandGroups(h)

		for i := JointIndex(0); i < JointCount; i++ {
			joint := DefaultPose(h, i)

			obj := engine.NewGameObject(fmt.Sprintf("%v %v body", h, BoneForJointIndex(i)))
			obj.Transform.Position = joint.Position
			obj.Transform.Rotation = joint.Orientation

			capsule := components.NewCapsuleCollider(
				rl.NewVector3(0, -spawnCapsuleHalfLength, 0),
				rl.NewVector3(0, spawnCapsuleHalfLength, 0),
				joint.Radius/2,
			)
			obj.AddComponent(capsule)

			rb := components.NewRigidbody(components.BodyDynamic)
			rb.UseGravity = false
			rb.Groups = groups
			obj.AddComponent(rb)

			obj.AddComponent(&BoneBody{Hand: h, Bone: BoneForJointIndex(i), State: BoneUninitialized})

			scene.AddGameObject(obj)
			world.AddObject(obj)
		}
	}
}
