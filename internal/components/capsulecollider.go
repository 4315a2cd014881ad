package components

import (
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CapsuleCollider is a capsule between two local-space endpoints, the shape
// contract the physics world consumes for hand bones (two local endpoints +
// radius, matching the external engine's capsule definition).
type CapsuleCollider struct {
	engine.BaseComponent
	StartPoint rl.Vector3 // local space
	EndPoint   rl.Vector3 // local space
	Radius float32
}

func NewCapsuleCollider(start, end rl.Vector3, radius float32) *CapsuleCollider {
	return &CapsuleCollider{StartPoint: start, EndPoint: end, Radius: radius}
}

// SetSegment replaces the capsule's endpoints and radius. The hand
// reconciliation step calls this exactly once per body, when it sizes the
// collider to the first measured bone length.
func (c *CapsuleCollider) SetSegment(start, end rl.Vector3, radius float32) {
	c.StartPoint = start
	c.EndPoint = end
	c.Radius = radius
}

// Length returns the distance between the two local endpoints.
func (c *CapsuleCollider) Length() float32 {
	return rl.Vector3Distance(c.StartPoint, c.EndPoint)
}

// WorldSegment returns the capsule's endpoints in world space.
func (c *CapsuleCollider) WorldSegment() (rl.Vector3, rl.Vector3) {
	g := c.GetGameObject()
	pos := g.WorldPosition()
	rot := g.WorldRotation()
	a := rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(c.StartPoint, rot))
	b := rl.Vector3Add(pos, rl.Vector3RotateByQuaternion(c.EndPoint, rot))
	return a, b
}
