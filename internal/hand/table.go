package hand

// FingerEntities records the tracked-entity UIDs for one finger's joint run.
type FingerEntities struct {
	Metacarpal   uint64
	Proximal     uint64
	Intermediate uint64
	Distal       uint64
	Tip          uint64
}

// Entities maps each of a hand's 26 bone slots to the UID of the tracked
// joint entity spawned for it. Built once by the tracked-hand spawner and
// read-only afterwards.
type Entities struct {
	Palm   uint64
	Wrist  uint64
	Thumb  FingerEntities
	Index  FingerEntities
	Middle FingerEntities
	Ring   FingerEntities
	Little FingerEntities
}

// Tables holds both hands' entity tables. The spawner publishes a *Tables
// once both hands are processed; holders must treat it as immutable.
type Tables struct {
	Left  Entities
	Right Entities
}

// ForHand returns the table for one hand.
func (t *Tables) ForHand(h Hand) *Entities {
	if h == Left {
		return &t.Left
	}
	return &t.Right
}

func (e *Entities) set(b Bone, uid uint64) {
	switch b {
	case BonePalm:
		e.Palm = uid
	case BoneWrist:
		e.Wrist = uid
	case BoneThumbMetacarpal:
		e.Thumb.Metacarpal = uid
	case BoneThumbProximal:
		e.Thumb.Proximal = uid
	case BoneThumbDistal:
		e.Thumb.Distal = uid
	case BoneThumbTip:
		e.Thumb.Tip = uid
	case BoneIndexMetacarpal:
		e.Index.Metacarpal = uid
	case BoneIndexProximal:
		e.Index.Proximal = uid
	case BoneIndexIntermediate:
		e.Index.Intermediate = uid
	case BoneIndexDistal:
		e.Index.Distal = uid
	case BoneIndexTip:
		e.Index.Tip = uid
	case BoneMiddleMetacarpal:
		e.Middle.Metacarpal = uid
	case BoneMiddleProximal:
		e.Middle.Proximal = uid
	case BoneMiddleIntermediate:
		e.Middle.Intermediate = uid
	case BoneMiddleDistal:
		e.Middle.Distal = uid
	case BoneMiddleTip:
		e.Middle.Tip = uid
	case BoneRingMetacarpal:
		e.Ring.Metacarpal = uid
	case BoneRingProximal:
		e.Ring.Proximal = uid
	case BoneRingIntermediate:
		e.Ring.Intermediate = uid
	case BoneRingDistal:
		e.Ring.Distal = uid
	case BoneRingTip:
		e.Ring.Tip = uid
	case BoneLittleMetacarpal:
		e.Little.Metacarpal = uid
	case BoneLittleProximal:
		e.Little.Proximal = uid
	case BoneLittleIntermediate:
		e.Little.Intermediate = uid
	case BoneLittleDistal:
		e.Little.Distal = uid
	case BoneLittleTip:
		e.Little.Tip = uid
	}
}

// BoneEntities resolves a bone's span to the UIDs of its bounding tracked
// entities. The third return is false for bones with no span.
func (e *Entities) BoneEntities(b Bone) (uint64, uint64, bool) {
	switch b {
	case BonePalm, BoneWrist,
		BoneThumbTip, BoneIndexTip, BoneMiddleTip, BoneRingTip, BoneLittleTip:
		return 0, 0, false
	case BoneThumbMetacarpal:
		return e.Thumb.Metacarpal, e.Thumb.Proximal, true
	case BoneThumbProximal:
		return e.Thumb.Proximal, e.Thumb.Distal, true
	case BoneThumbDistal:
		return e.Thumb.Distal, e.Thumb.Tip, true
	case BoneIndexMetacarpal:
		return e.Index.Metacarpal, e.Index.Proximal, true
	case BoneIndexProximal:
		return e.Index.Proximal, e.Index.Intermediate, true
	case BoneIndexIntermediate:
		return e.Index.Intermediate, e.Index.Distal, true
	case BoneIndexDistal:
		return e.Index.Distal, e.Index.Tip, true
	case BoneMiddleMetacarpal:
		return e.Middle.Metacarpal, e.Middle.Proximal, true
	case BoneMiddleProximal:
		return e.Middle.Proximal, e.Middle.Intermediate, true
	case BoneMiddleIntermediate:
		return e.Middle.Intermediate, e.Middle.Distal, true
	case BoneMiddleDistal:
		return e.Middle.Distal, e.Middle.Tip, true
	case BoneRingMetacarpal:
		return e.Ring.Metacarpal, e.Ring.Proximal, true
	case BoneRingProximal:
		return e.Ring.Proximal, e.Ring.Intermediate, true
	case BoneRingIntermediate:
		return e.Ring.Intermediate, e.Ring.Distal, true
	case BoneRingDistal:
		return e.Ring.Distal, e.Ring.Tip, true
	case BoneLittleMetacarpal:
		return e.Little.Metacarpal, e.Little.Proximal, true
	case BoneLittleProximal:
		return e.Little.Proximal, e.Little.Intermediate, true
	case BoneLittleIntermediate:
		return e.Little.Intermediate, e.Little.Distal, true
	case BoneLittleDistal:
		return e.Little.Distal, e.Little.Tip, true
	default:
		return 0, 0, false
	}
}
