package hand

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func toMgl(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// LookRotation builds the orientation of a body sitting at eye with its -Z
// axis pointing at target, matching the tracked skeleton's forward
// convention. Callers guard against eye == target (degenerate direction)
// before calling.
func LookRotation(eye, target, up rl.Vector3) rl.Quaternion {
	back := toMgl(eye).Sub(toMgl(target)).Normalize() // local +Z in world space
	upRef := toMgl(up)

	right := upRef.Cross(back)
	if right.Len() < 1e-6 {
		// Direction is collinear with up; any perpendicular frame will do.
		upRef = mgl32.Vec3{0, 0, 1}
		right = upRef.Cross(back)
	}
	right = right.Normalize()
	upOrtho := back.Cross(right)

	m := mgl32.Mat3FromCols(right, upOrtho, back)
	q := mgl32.Mat4ToQuat(m.Mat4())
	return rl.NewQuaternion(q.X(), q.Y(), q.Z(), q.W)
}
