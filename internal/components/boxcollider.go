package components

import (
	"github.com/0xtito/xr-hand/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box; the scene only uses it for the floor.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter returns the world-space center of this collider
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), b.Offset)
}

// GetWorldSize returns the box size scaled by the GameObject's world scale.
func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	scale := b.GetGameObject().WorldScale()
	return rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
}

// HalfExtents returns half the world size on each axis.
func (b *BoxCollider) HalfExtents() rl.Vector3 {
	s := b.GetWorldSize()
	return rl.Vector3{X: s.X / 2, Y: s.Y / 2, Z: s.Z / 2}
}
