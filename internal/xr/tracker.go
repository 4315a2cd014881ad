package xr

import (
	"math"

	"github.com/0xtito/xr-hand/internal/hand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pose is one tracked joint sample in world space.
type Pose struct {
	Position    rl.Vector3
	Orientation rl.Quaternion
}

// Tracker produces joint poses for a hand at a given time. The second
// return is false when the joint is not tracked this frame; callers keep
// the previous pose in that case.
type Tracker interface {
	JointPose(h hand.Hand, index hand.JointIndex, t float64) (Pose, bool)
}

// Emulator is a Tracker that plays back the calibration pose with a slow
// whole-hand drift, so the joint layout and bone lengths stay anatomically
// fixed while every tracked entity still moves each frame. Each hand runs
// on its own phase so the two never move in lockstep.
type Emulator struct {
	// Amplitude is the peak drift from the calibration pose, in meters.
	Amplitude float32
	// Frequency is the drift rate in cycles per second.
	Frequency float64
}

func NewEmulator() *Emulator {
	return &Emulator{Amplitude: 0.05, Frequency: 0.4}
}

func (e *Emulator) JointPose(h hand.Hand, index hand.JointIndex, t float64) (Pose, bool) {
	base := hand.DefaultPose(h, index)

	phase := 0.0
	if h == hand.Left {
		phase = math.Pi / 2
	}
	w := 2 * math.Pi * e.Frequency * t

	offset := rl.NewVector3(
		e.Amplitude*float32(math.Sin(w+phase)),
		e.Amplitude*0.5*float32(math.Sin(2*w+phase)),
		e.Amplitude*float32(math.Cos(w+phase)),
	)

	return Pose{
		Position:    rl.Vector3Add(base.Position, offset),
		Orientation: base.Orientation,
	}, true
}
