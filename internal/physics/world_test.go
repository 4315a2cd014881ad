package physics

import (
	"testing"

	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func newDynamicSphere(name string, pos rl.Vector3, radius float32) (*engine.GameObject, *components.Rigidbody) {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	rb := components.NewRigidbody(components.BodyDynamic)
	rb.UseGravity = false
	g.AddComponent(rb)
	return g, rb
}

func TestStepIntegratesVelocity(t *testing.T) {
	w := NewWorld()
	g, rb := newDynamicSphere("mover", rl.NewVector3(0, 1, 0), 0.05)
	rb.Velocity = rl.NewVector3(1, 0, 0)
	w.AddObject(g)

	w.Step()

	want := 1 * w.Timestep
	if absf(g.Transform.Position.X-want) > 1e-6 {
		t.Errorf("position.X = %v, want %v", g.Transform.Position.X, want)
	}
	if g.Transform.Position.Y != 1 {
		t.Errorf("position.Y drifted to %v with gravity off", g.Transform.Position.Y)
	}
}

func TestGravityOnlyWhenEnabled(t *testing.T) {
	w := NewWorld()
	coasting, _ := newDynamicSphere("coasting", rl.NewVector3(0, 1, 0), 0.05)
	falling, fallRb := newDynamicSphere("falling", rl.NewVector3(1, 1, 0), 0.05)
	fallRb.UseGravity = true
	w.AddObject(coasting)
	w.AddObject(falling)

	w.Step()

	if coasting.Transform.Position.Y != 1 {
		t.Errorf("gravity applied to a body with UseGravity off")
	}
	if fallRb.Velocity.Y >= 0 {
		t.Errorf("falling body velocity.Y = %v, want negative", fallRb.Velocity.Y)
	}
	if falling.Transform.Position.Y >= 1 {
		t.Errorf("falling body did not fall")
	}
}

func TestStepIntegratesOrientation(t *testing.T) {
	w := NewWorld()
	g, rb := newDynamicSphere("spinner", rl.NewVector3(0, 1, 0), 0.05)
	rb.AngularVelocity = rl.NewVector3(0, rl.Pi, 0) // half a turn per second
	w.AddObject(g)

	// One second of steps rotates the body half a turn about +Y.
	for i := 0; i < 60; i++ {
		w.Step()
	}

	fwd := g.Transform.Forward()
	if absf(fwd.X) > 1e-3 || absf(fwd.Z-1) > 1e-3 {
		t.Errorf("forward after half turn = %v, want (0, 0, 1)", fwd)
	}
}

func TestKinematicBodiesAreNotIntegrated(t *testing.T) {
	w := NewWorld()
	g := engine.NewGameObject("tracked")
	g.Transform.Position = rl.NewVector3(0, 1, 0)
	g.AddComponent(components.NewSphereCollider(0.05))
	rb := components.NewRigidbody(components.BodyKinematic)
	rb.Velocity = rl.NewVector3(5, 5, 5)
	g.AddComponent(rb)
	w.AddObject(g)

	w.Step()

	if g.Transform.Position != rl.NewVector3(0, 1, 0) {
		t.Errorf("kinematic body moved to %v", g.Transform.Position)
	}
}

func TestOverlappingPairSeparates(t *testing.T) {
	w := NewWorld()
	a, _ := newDynamicSphere("a", rl.NewVector3(0, 1, 0), 0.05)
	b, _ := newDynamicSphere("b", rl.NewVector3(0.06, 1, 0), 0.05)
	w.AddObject(a)
	w.AddObject(b)

	w.Step()

	dist := rl.Vector3Distance(a.Transform.Position, b.Transform.Position)
	if dist < 0.1-1e-4 {
		t.Errorf("bodies still overlap: distance %v, want >= 0.1", dist)
	}
}

func TestGroupFilterBlocksPair(t *testing.T) {
	w := NewWorld()
	a, aRb := newDynamicSphere("a", rl.NewVector3(0, 1, 0), 0.05)
	b, bRb := newDynamicSphere("b", rl.NewVector3(0.06, 1, 0), 0.05)
	aRb.Groups = components.NewCollisionGroups(components.Group1, components.GroupAll.Remove(components.Group1))
	bRb.Groups = components.NewCollisionGroups(components.Group1, components.GroupAll.Remove(components.Group1))
	w.AddObject(a)
	w.AddObject(b)

	w.Step()

	if a.Transform.Position != (rl.NewVector3(0, 1, 0)) {
		t.Errorf("filtered body moved to %v", a.Transform.Position)
	}
	if b.Transform.Position != (rl.NewVector3(0.06, 1, 0)) {
		t.Errorf("filtered body moved to %v", b.Transform.Position)
	}
}

func TestFallingBodyRestsOnFloor(t *testing.T) {
	w := NewWorld()

	floor := engine.NewGameObject("floor")
	floor.Transform.Position = rl.NewVector3(0, -0.05, 0)
	floor.AddComponent(components.NewBoxCollider(rl.NewVector3(4, 0.1, 4)))
	floor.AddComponent(components.NewRigidbody(components.BodyFixed))
	w.AddObject(floor)

	const radius = 0.05
	ball, rb := newDynamicSphere("ball", rl.NewVector3(0, 0.3, 0), radius)
	rb.UseGravity = true
	w.AddObject(ball)

	for i := 0; i < 300; i++ {
		w.Step()
	}

	// Floor top is at y=0; the sphere should settle with its center one
	// radius above it.
	y := ball.Transform.Position.Y
	if y < 0 || absf(y-radius) > 0.02 {
		t.Errorf("resting height %v, want about %v", y, radius)
	}
}

type collisionRecorder struct {
	engine.BaseComponent
	enters []string
	exits  []string
}

func (c *collisionRecorder) OnCollisionEnter(other *engine.GameObject) {
	c.enters = append(c.enters, other.Name)
}

func (c *collisionRecorder) OnCollisionExit(other *engine.GameObject) {
	c.exits = append(c.exits, other.Name)
}

func TestCollisionEnterExitCallbacks(t *testing.T) {
	w := NewWorld()
	a, _ := newDynamicSphere("a", rl.NewVector3(0, 1, 0), 0.05)
	b, _ := newDynamicSphere("b", rl.NewVector3(0.06, 1, 0), 0.05)
	rec := &collisionRecorder{}
	a.AddComponent(rec)
	w.AddObject(a)
	w.AddObject(b)

	w.Step()

	if len(rec.enters) != 1 || rec.enters[0] != "b" {
		t.Fatalf("enters = %v, want [b]", rec.enters)
	}
	if len(rec.exits) != 0 {
		t.Fatalf("unexpected exits %v", rec.exits)
	}

	// Move the pair well apart; the next step reports the exit.
	a.Transform.Position = rl.NewVector3(1, 1, 0)
	w.Step()

	if len(rec.exits) != 1 || rec.exits[0] != "b" {
		t.Errorf("exits = %v, want [b]", rec.exits)
	}
	if len(rec.enters) != 1 {
		t.Errorf("enters grew to %v", rec.enters)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
