package hand

import (
	"testing"
)

var spanlessBones = map[Bone]bool{
	BonePalm:      true,
	BoneWrist:     true,
	BoneThumbTip:  true,
	BoneIndexTip:  true,
	BoneMiddleTip: true,
	BoneRingTip:   true,
	BoneLittleTip: true,
}

func TestBoneSpanCoverage(t *testing.T) {
	spanned := 0
	for _, b := range AllBones() {
		start, end, ok := b.Span()
		if spanlessBones[b] {
			if ok {
				t.Errorf("%v: expected no span, got %v..%v", b, start, end)
			}
			continue
		}
		if !ok {
			t.Errorf("%v: expected a span", b)
			continue
		}
		if end != start+1 {
			t.Errorf("%v: span %v..%v is not adjacent", b, start, end)
		}
		if JointIndex(b) != start {
			t.Errorf("%v: span starts at %v, want the bone's own joint", b, start)
		}
		spanned++
	}
	if spanned != 19 {
		t.Errorf("spanned bones = %d, want 19", spanned)
	}
}

func TestBoneForJointIndexRoundTrip(t *testing.T) {
	for i := JointIndex(0); i < JointCount; i++ {
		b := BoneForJointIndex(i)
		if JointIndex(b) != i {
			t.Errorf("joint %v maps to bone %v", i, b)
		}
	}
}

func TestBoneSpanOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range bone")
		}
	}()
	Bone(BoneCount).Span()
}

func TestBoneEntitiesMatchSpans(t *testing.T) {
	var e Entities
	for i, b := range AllBones() {
		e.set(b, uint64(i+1))
	}
	for _, b := range AllBones() {
		start, end, spanOK := b.Span()
		startUID, endUID, tableOK := e.BoneEntities(b)
		if spanOK != tableOK {
			t.Errorf("%v: Span ok=%v but BoneEntities ok=%v", b, spanOK, tableOK)
			continue
		}
		if !spanOK {
			continue
		}
		if startUID != uint64(start)+1 || endUID != uint64(end)+1 {
			t.Errorf("%v: BoneEntities = (%d, %d), want (%d, %d)", b, startUID, endUID, start+1, end+1)
		}
	}
}
