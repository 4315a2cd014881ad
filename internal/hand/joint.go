package hand

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Hand selects one of the two tracked hands.
type Hand int

const (
	Left Hand = iota
	Right
)

func (h Hand) String() string {
	if h == Left {
		return "Left"
	}
	return "Right"
}

// Hands lists both hands in spawn order.
func Hands() [2]Hand {
	return [2]Hand{Left, Right}
}

// JointIndex addresses one of the 26 joints of a hand in the canonical
// OpenXR order: palm, wrist, then four joints per finger from metacarpal to
// tip (thumb has no intermediate, so its run is metacarpal, proximal,
// distal, tip).
type JointIndex int

const (
	JointPalm JointIndex = iota
	JointWrist
	JointThumbMetacarpal
	JointThumbProximal
	JointThumbDistal
	JointThumbTip
	JointIndexMetacarpal
	JointIndexProximal
	JointIndexIntermediate
	JointIndexDistal
	JointIndexTip
	JointMiddleMetacarpal
	JointMiddleProximal
	JointMiddleIntermediate
	JointMiddleDistal
	JointMiddleTip
	JointRingMetacarpal
	JointRingProximal
	JointRingIntermediate
	JointRingDistal
	JointRingTip
	JointLittleMetacarpal
	JointLittleProximal
	JointLittleIntermediate
	JointLittleDistal
	JointLittleTip

	JointCount = 26
)

var jointNames = [JointCount]string{
	"Palm", "Wrist",
	"ThumbMetacarpal", "ThumbProximal", "ThumbDistal", "ThumbTip",
	"IndexMetacarpal", "IndexProximal", "IndexIntermediate", "IndexDistal", "IndexTip",
	"MiddleMetacarpal", "MiddleProximal", "MiddleIntermediate", "MiddleDistal", "MiddleTip",
	"RingMetacarpal", "RingProximal", "RingIntermediate", "RingDistal", "RingTip",
	"LittleMetacarpal", "LittleProximal", "LittleIntermediate", "LittleDistal", "LittleTip",
}

func (j JointIndex) String() string {
	if j < 0 || j >= JointCount {
		return "JointInvalid"
	}
	return jointNames[j]
}

// JointIndexByName resolves a canonical joint name. The second return is
// false for unknown names.
func JointIndexByName(name string) (JointIndex, bool) {
	for i, n := range jointNames {
		if n == name {
			return JointIndex(i), true
		}
	}
	return 0, false
}

// Joint is one calibrated hand-joint sample: a pose, its validity/tracked
// flags as reported by the tracking runtime, and the joint radius.
type Joint struct {
	Position           rl.Vector3
	PositionValid      bool
	PositionTracked    bool
	Orientation        rl.Quaternion
	OrientationValid   bool
	OrientationTracked bool
	Radius             float32
}
