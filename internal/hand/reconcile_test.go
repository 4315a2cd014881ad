package hand

import (
	"testing"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"
	"github.com/0xtito/xr-hand/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newReconcileRig(t *testing.T) (*engine.Scene, *Reconciler) {
	t.Helper()
	scene := engine.NewScene("test")
	world := physics.NewWorld()
	tables := SpawnTrackedHands(scene, world)
	SpawnPhysicsHands(scene, world)
	r := NewReconciler(scene, physics.DefaultTimestep)
	r.SetTables(tables)
	return scene, r
}

// setSpan places the two tracked entities bounding a bone at the given
// world positions, as the tracking input layer would.
func setSpan(t *testing.T, scene *engine.Scene, h Hand, b Bone, start, end rl.Vector3) {
	t.Helper()
	sj, ej, ok := b.Span()
	if !ok {
		t.Fatalf("%v has no span", b)
	}
	findTracked(t, scene, h, sj).Transform.Position = start
	findTracked(t, scene, h, ej).Transform.Position = end
}

func TestReconcileWithoutTablesIsNoop(t *testing.T) {
	scene := engine.NewScene("test")
	world := physics.NewWorld()
	SpawnPhysicsHands(scene, world)
	r := NewReconciler(scene, physics.DefaultTimestep)

	r.Step()
	r.Step()

	for _, obj := range scene.GameObjects {
		body := engine.GetComponent[*BoneBody](obj)
		if body.State != BoneUninitialized {
			t.Fatalf("%q initialized without tables", obj.Name)
		}
	}
}

func TestReconcileSizesCapsuleOnce(t *testing.T) {
	scene, r := newReconcileRig(t)
	start := rl.NewVector3(0.1, 1.0, -0.1)
	end := rl.NewVector3(0.1, 1.0, -0.14)
	setSpan(t, scene, Right, BoneIndexProximal, start, end)

	obj := findBody(t, scene, Right, BoneIndexProximal)
	body := engine.GetComponent[*BoneBody](obj)
	capsule := engine.GetComponent[*components.CapsuleCollider](obj)

	r.Step()

	if body.State != BoneInitialized {
		t.Fatal("body not initialized after first pass")
	}
	if got := capsule.Length(); absf(got-0.04) > 1e-6 {
		t.Errorf("capsule length %v, want 0.04", got)
	}
	if capsule.Radius != reconcileBoneRadius {
		t.Errorf("capsule radius %v, want %v", capsule.Radius, reconcileBoneRadius)
	}

	// A longer measurement on a later tick must not resize the collider.
	setSpan(t, scene, Right, BoneIndexProximal, start, rl.NewVector3(0.1, 1.0, -0.2))
	r.Step()
	if got := capsule.Length(); absf(got-0.04) > 1e-6 {
		t.Errorf("capsule resized to %v after initialization", got)
	}
}

func TestReconcileConvergedBodyGetsZeroVelocity(t *testing.T) {
	scene, r := newReconcileRig(t)
	start := rl.NewVector3(0.05, 1.1, -0.08)
	end := rl.NewVector3(0.09, 1.1, -0.08)
	setSpan(t, scene, Left, BoneMiddleIntermediate, start, end)

	obj := findBody(t, scene, Left, BoneMiddleIntermediate)
	r.Step() // sizes the capsule

	obj.Transform.Position = start
	obj.Transform.Rotation = LookRotation(start, end, rl.NewVector3(0, 1, 0))
	r.Step()

	rb := engine.GetComponent[*components.Rigidbody](obj)
	zero := rl.NewVector3(0, 0, 0)
	if rb.Velocity != zero {
		t.Errorf("converged body linear velocity = %v, want exactly zero", rb.Velocity)
	}
	if rb.AngularVelocity != zero {
		t.Errorf("converged body angular velocity = %v, want exactly zero", rb.AngularVelocity)
	}
}

func TestReconcileLinearVelocityClosesGap(t *testing.T) {
	scene, r := newReconcileRig(t)
	start := rl.NewVector3(0.2, 1.0, -0.1)
	end := rl.NewVector3(0.2, 1.0, -0.15)
	setSpan(t, scene, Right, BoneThumbProximal, start, end)

	obj := findBody(t, scene, Right, BoneThumbProximal)
	r.Step()

	obj.Transform.Position = rl.NewVector3(0.2, 0.9, -0.1) // 0.1 below target
	r.Step()

	rb := engine.GetComponent[*components.Rigidbody](obj)
	// One timestep at this velocity lands the body exactly on the target.
	if absf(rb.Velocity.Y*r.Timestep-0.1) > 1e-5 {
		t.Errorf("velocity %v does not close the 0.1 gap in one tick", rb.Velocity)
	}
	if absf(rb.Velocity.X) > 1e-6 || absf(rb.Velocity.Z) > 1e-6 {
		t.Errorf("velocity %v has off-axis components", rb.Velocity)
	}
}

func TestReconcileAngularVelocityPerpendicular(t *testing.T) {
	scene, r := newReconcileRig(t)
	start := rl.NewVector3(0, 1, 0)
	end := rl.NewVector3(0.04, 1, 0) // desired forward +X
	setSpan(t, scene, Right, BoneRingProximal, start, end)

	obj := findBody(t, scene, Right, BoneRingProximal)
	r.Step()

	obj.Transform.Position = start
	obj.Transform.Rotation = rl.QuaternionIdentity() // body forward -Z
	r.Step()

	rb := engine.GetComponent[*components.Rigidbody](obj)
	// cross(-Z, +X) = -Y, scaled by 1/dt.
	if rb.AngularVelocity.Y >= 0 {
		t.Errorf("angular velocity %v should rotate about -Y", rb.AngularVelocity)
	}
	if absf(rb.AngularVelocity.Y+1/r.Timestep) > 1e-2 {
		t.Errorf("angular velocity magnitude %v, want %v", -rb.AngularVelocity.Y, 1/r.Timestep)
	}
	if absf(rb.AngularVelocity.X) > 1e-4 || absf(rb.AngularVelocity.Z) > 1e-4 {
		t.Errorf("angular velocity %v has off-axis components", rb.AngularVelocity)
	}
}

func TestReconcileAntiparallelForwardStalls(t *testing.T) {
	scene, r := newReconcileRig(t)
	start := rl.NewVector3(0, 1, 0)
	end := rl.NewVector3(0, 1, 0.04) // desired forward +Z
	setSpan(t, scene, Right, BoneLittleProximal, start, end)

	obj := findBody(t, scene, Right, BoneLittleProximal)
	r.Step()

	obj.Transform.Position = start
	obj.Transform.Rotation = rl.QuaternionIdentity() // body forward -Z
	r.Step()

	// The cross product of opposite forwards vanishes, so the controller
	// produces no torque at exactly 180 degrees of error.
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if l := rl.Vector3Length(rb.AngularVelocity); l > 1e-4 {
		t.Errorf("angular velocity length %v at the antiparallel singularity", l)
	}
	// The body already sits on the start joint, so there is no linear pull
	// either, orientation error notwithstanding.
	if rb.Velocity != (rl.NewVector3(0, 0, 0)) {
		t.Errorf("linear velocity = %v, want zero at the target position", rb.Velocity)
	}
}

func TestReconcileDegenerateSpanSkipsBody(t *testing.T) {
	scene, r := newReconcileRig(t)
	p := rl.NewVector3(0.1, 1, -0.1)
	setSpan(t, scene, Left, BoneIndexDistal, p, p)

	obj := findBody(t, scene, Left, BoneIndexDistal)
	body := engine.GetComponent[*BoneBody](obj)
	rb := engine.GetComponent[*components.Rigidbody](obj)
	sentinel := rl.NewVector3(1, 2, 3)
	rb.Velocity = sentinel

	r.Step()

	if body.State != BoneUninitialized {
		t.Error("collapsed span should not initialize the collider")
	}
	if rb.Velocity != sentinel {
		t.Errorf("collapsed span overwrote velocity: %v", rb.Velocity)
	}
}

func TestReconcileHandSelection(t *testing.T) {
	scene, r := newReconcileRig(t)
	r.Hands = LeftOnly

	setSpan(t, scene, Left, BoneIndexProximal,
		rl.NewVector3(0, 1, 0), rl.NewVector3(0, 1, -0.04))
	setSpan(t, scene, Right, BoneIndexProximal,
		rl.NewVector3(0.1, 1, 0), rl.NewVector3(0.1, 1, -0.04))

	r.Step()

	left := engine.GetComponent[*BoneBody](findBody(t, scene, Left, BoneIndexProximal))
	right := engine.GetComponent[*BoneBody](findBody(t, scene, Right, BoneIndexProximal))
	if left.State != BoneInitialized {
		t.Error("selected hand was skipped")
	}
	if right.State != BoneUninitialized {
		t.Error("deselected hand was reconciled")
	}
}

func TestReconcilePositionMatchingSnaps(t *testing.T) {
	scene, r := newReconcileRig(t)
	r.Matching = PositionMatching

	start := rl.NewVector3(0.3, 1.2, -0.2)
	end := rl.NewVector3(0.3, 1.2, -0.25)
	setSpan(t, scene, Right, BoneMiddleProximal, start, end)

	obj := findBody(t, scene, Right, BoneMiddleProximal)
	r.Step() // init
	r.Step() // snap

	if obj.Transform.Position != start {
		t.Errorf("position %v, want snap to %v", obj.Transform.Position, start)
	}
	rb := engine.GetComponent[*components.Rigidbody](obj)
	zero := rl.NewVector3(0, 0, 0)
	if rb.Velocity != zero || rb.AngularVelocity != zero {
		t.Error("position matching should zero the body's velocities")
	}
}

func TestParseModes(t *testing.T) {
	if m, err := ParseMatchingMode("Position"); err != nil || m != PositionMatching {
		t.Errorf("ParseMatchingMode(Position) = %v, %v", m, err)
	}
	if _, err := ParseMatchingMode("teleport"); err == nil {
		t.Error("expected error for unknown matching mode")
	}
	if h, err := ParseHandSelection(""); err != nil || h != BothHands {
		t.Errorf("ParseHandSelection(empty) = %v, %v", h, err)
	}
	if _, err := ParseHandSelection("middle"); err == nil {
		t.Error("expected error for unknown hand selection")
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
