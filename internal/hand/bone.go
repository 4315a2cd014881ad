package hand

import "fmt"

// Bone names one of the 26 anatomical segments of a hand, enumerated
// identically to JointIndex. Palm, Wrist and the five tips have no physical
// extent; every other bone spans exactly two joints.
type Bone int

const (
	BonePalm Bone = iota
	BoneWrist
	BoneThumbMetacarpal
	BoneThumbProximal
	BoneThumbDistal
	BoneThumbTip
	BoneIndexMetacarpal
	BoneIndexProximal
	BoneIndexIntermediate
	BoneIndexDistal
	BoneIndexTip
	BoneMiddleMetacarpal
	BoneMiddleProximal
	BoneMiddleIntermediate
	BoneMiddleDistal
	BoneMiddleTip
	BoneRingMetacarpal
	BoneRingProximal
	BoneRingIntermediate
	BoneRingDistal
	BoneRingTip
	BoneLittleMetacarpal
	BoneLittleProximal
	BoneLittleIntermediate
	BoneLittleDistal
	BoneLittleTip

	BoneCount = 26
)

func (b Bone) String() string {
	if b < 0 || b >= BoneCount {
		return "BoneInvalid"
	}
	return jointNames[b]
}

// AllBones returns the 26 bones in canonical order.
func AllBones() [BoneCount]Bone {
	var bones [BoneCount]Bone
	for i := range bones {
		bones[i] = Bone(i)
	}
	return bones
}

// BoneForJointIndex converts a canonical joint index into the bone with the
// same enumeration slot. An out-of-range index is a programming error and
// panics.
func BoneForJointIndex(index JointIndex) Bone {
	if index < 0 || index >= JointCount {
		panic(fmt.Sprintf("hand: joint index %d out of range", index))
	}
	return Bone(index)
}

// Span returns the two joints bounding a bone, proximal first. The third
// return is false for bones with no physical extent. Note the enumeration
// semantics inherited from the joint ordering: bone n spans joints (n, n+1)
// within its finger's run, not a hierarchical parent/child pair.
func (b Bone) Span() (JointIndex, JointIndex, bool) {
	if b < 0 || b >= BoneCount {
		panic(fmt.Sprintf("hand: bone %d out of range", b))
	}
	switch b {
	case BonePalm, BoneWrist,
		BoneThumbTip, BoneIndexTip, BoneMiddleTip, BoneRingTip, BoneLittleTip:
		return 0, 0, false
	default:
		return JointIndex(b), JointIndex(b) + 1, true
	}
}

// SpanPoses resolves a bone's span to the calibrated joint poses for one
// hand. The third return is false for bones with no span.
func SpanPoses(h Hand, b Bone) (Joint, Joint, bool) {
	start, end, ok := b.Span()
	if !ok {
		return Joint{}, Joint{}, false
	}
	return DefaultPose(h, start), DefaultPose(h, end), true
}
