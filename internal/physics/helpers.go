package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// closestPointOnSegment returns the point on segment ab closest to p.
func closestPointOnSegment(p, a, b rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	abLenSq := rl.Vector3DotProduct(ab, ab)
	if abLenSq < 1e-12 {
		return a
	}
	t := clamp(rl.Vector3DotProduct(rl.Vector3Subtract(p, a), ab)/abLenSq, 0, 1)
	return rl.Vector3Add(a, rl.Vector3Scale(ab, t))
}

// closestPointsSegmentSegment returns the pair of closest points between
// segments p1q1 and p2q2 (Ericson, Real-Time Collision Detection 5.1.9).
func closestPointsSegmentSegment(p1, q1, p2, q2 rl.Vector3) (rl.Vector3, rl.Vector3) {
	d1 := rl.Vector3Subtract(q1, p1)
	d2 := rl.Vector3Subtract(q2, p2)
	r := rl.Vector3Subtract(p1, p2)

	a := rl.Vector3DotProduct(d1, d1)
	e := rl.Vector3DotProduct(d2, d2)
	f := rl.Vector3DotProduct(d2, r)

	var s, t float32
	const eps = 1e-12

	switch {
	case a <= eps && e <= eps:
		return p1, p2
	case a <= eps:
		t = clamp(f/e, 0, 1)
	default:
		c := rl.Vector3DotProduct(d1, r)
		if e <= eps {
			s = clamp(-c/a, 0, 1)
		} else {
			b := rl.Vector3DotProduct(d1, d2)
			denom := a*e - b*b
			if denom > eps {
				s = clamp((b*f-c*e)/denom, 0, 1)
			}
			t = (b*s + f) / e
			if t < 0 {
				t = 0
				s = clamp(-c/a, 0, 1)
			} else if t > 1 {
				t = 1
				s = clamp((b-c)/a, 0, 1)
			}
		}
	}

	c1 := rl.Vector3Add(p1, rl.Vector3Scale(d1, s))
	c2 := rl.Vector3Add(p2, rl.Vector3Scale(d2, t))
	return c1, c2
}

// closestPointOnBox clamps p into the axis-aligned box at center with the
// given half extents.
func closestPointOnBox(p, center, half rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(p.X, center.X-half.X, center.X+half.X),
		Y: clamp(p.Y, center.Y-half.Y, center.Y+half.Y),
		Z: clamp(p.Z, center.Z-half.Z, center.Z+half.Z),
	}
}

// integrateOrientation advances a quaternion by an axis-scaled angular
// velocity over dt.
func integrateOrientation(q rl.Quaternion, angvel rl.Vector3, dt float32) rl.Quaternion {
	speed := rl.Vector3Length(angvel)
	if speed*dt < 1e-9 {
		return q
	}
	axis := rl.Vector3Scale(angvel, 1/speed)
	dq := rl.QuaternionFromAxisAngle(axis, speed*dt)
	return rl.QuaternionNormalize(rl.QuaternionMultiply(dq, q))
}
