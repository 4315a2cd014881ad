package physics

import (
	"github.com/0xtito/xr-hand/internal/components"
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// worldSegment returns the body's capsule endpoints from solver state, not
// from the (stale mid-step) GameObject transform.
func (s *bodyState) worldSegment() (rl.Vector3, rl.Vector3, float32, bool) {
	switch {
	case s.capsule != nil:
		a := rl.Vector3Add(s.pos, rl.Vector3RotateByQuaternion(s.capsule.StartPoint, s.rot))
		b := rl.Vector3Add(s.pos, rl.Vector3RotateByQuaternion(s.capsule.EndPoint, s.rot))
		return a, b, s.capsule.Radius, true
	case s.sphere != nil:
		// A sphere is a zero-length capsule as far as the solver cares.
		c := rl.Vector3Add(s.pos, s.sphere.Offset)
		return c, c, s.sphere.Radius, true
	default:
		return rl.Vector3{}, rl.Vector3{}, 0, false
	}
}

// resolveDynamicPair handles capsule-vs-capsule contact between two dynamic
// bodies, respecting their interaction groups.
func (w *World) resolveDynamicPair(a, b *bodyState) {
	if !a.rb.Groups.Allows(b.rb.Groups) {
		return
	}

	a1, a2, ra, ok := a.worldSegment()
	if !ok {
		return
	}
	b1, b2, rb, ok := b.worldSegment()
	if !ok {
		return
	}

	c1, c2 := closestPointsSegmentSegment(a1, a2, b1, b2)
	diff := rl.Vector3Subtract(c1, c2)
	dist := rl.Vector3Length(diff)
	minDist := ra + rb
	if dist >= minDist || dist < 1e-4 {
		return
	}

	w.recordCollision(a.obj, b.obj)

	normal := rl.Vector3Scale(diff, 1/dist)
	penetration := minDist - dist

	// Split the push based on mass ratio
	totalMass := a.rb.Mass + b.rb.Mass
	ratioA := b.rb.Mass / totalMass
	ratioB := a.rb.Mass / totalMass
	a.pos = rl.Vector3Add(a.pos, rl.Vector3Scale(normal, penetration*ratioA))
	b.pos = rl.Vector3Subtract(b.pos, rl.Vector3Scale(normal, penetration*ratioB))

	relVel := rl.Vector3Subtract(a.linvel, b.linvel)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal > 0 {
		return
	}

	e := (a.rb.Bounciness + b.rb.Bounciness) / 2
	j := -(1 + e) * velAlongNormal
	j /= 1/a.rb.Mass + 1/b.rb.Mass

	impulse := rl.Vector3Scale(normal, j)
	a.linvel = rl.Vector3Add(a.linvel, rl.Vector3Scale(impulse, 1/a.rb.Mass))
	b.linvel = rl.Vector3Subtract(b.linvel, rl.Vector3Scale(impulse, 1/b.rb.Mass))
}

// resolveStatic handles a dynamic capsule against static scenery (the floor's
// box collider).
func (w *World) resolveStatic(s *bodyState, static *engine.GameObject) {
	box := engine.GetComponent[*components.BoxCollider](static)
	if box == nil {
		return
	}

	if staticRb := engine.GetComponent[*components.Rigidbody](static); staticRb != nil {
		if !s.rb.Groups.Allows(staticRb.Groups) {
			return
		}
	}

	a, b, radius, ok := s.worldSegment()
	if !ok {
		return
	}

	center := box.GetCenter()
	half := box.HalfExtents()

	// Two clamp iterations get close enough to the true nearest feature for
	// the shallow contacts hands produce.
	p := closestPointOnSegment(center, a, b)
	q := closestPointOnBox(p, center, half)
	p = closestPointOnSegment(q, a, b)
	q = closestPointOnBox(p, center, half)

	diff := rl.Vector3Subtract(p, q)
	dist := rl.Vector3Length(diff)
	if dist >= radius || dist < 1e-5 {
		return
	}

	w.recordCollision(s.obj, static)

	normal := rl.Vector3Scale(diff, 1/dist)
	penetration := radius - dist
	s.pos = rl.Vector3Add(s.pos, rl.Vector3Scale(normal, penetration))

	velAlongNormal := rl.Vector3DotProduct(s.linvel, normal)
	if velAlongNormal < 0 {
		reflect := rl.Vector3Scale(normal, -(1+s.rb.Bounciness)*velAlongNormal)
		s.linvel = rl.Vector3Add(s.linvel, reflect)
		s.linvel.X *= 1 - s.rb.Friction
		s.linvel.Z *= 1 - s.rb.Friction
	}
}
