package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// PropagateTransforms recomputes the cached world-space transform of every
// object in the scene, top-down through the parent hierarchy. It runs as the
// last stage of a fixed tick, after the physics writeback, so rendering and
// the next tick's queries read a consistent snapshot instead of recursing
// through parents on every access.
func (s *Scene) PropagateTransforms() {
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			propagate(g, Transform{
				Rotation: rl.QuaternionIdentity(),
				Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
			})
		}
	}
}

func propagate(g *GameObject, parent Transform) {
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parent.Scale.X,
		Y: g.Transform.Position.Y * parent.Scale.Y,
		Z: g.Transform.Position.Z * parent.Scale.Z,
	}
	g.Global = Transform{
		Position: rl.Vector3Add(parent.Position, rl.Vector3RotateByQuaternion(scaled, parent.Rotation)),
		Rotation: rl.QuaternionMultiply(parent.Rotation, g.Transform.Rotation),
		Scale: rl.Vector3{
			X: parent.Scale.X * g.Transform.Scale.X,
			Y: parent.Scale.Y * g.Transform.Scale.Y,
			Z: parent.Scale.Z * g.Transform.Scale.Z,
		},
	}
	for _, child := range g.Children {
		propagate(child, g.Global)
	}
}
