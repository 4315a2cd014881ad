package xr

import (
	"testing"

	"github.com/0xtito/xr-hand/internal/hand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestEmulatorPreservesBoneLengths(t *testing.T) {
	e := NewEmulator()

	baseA := hand.DefaultPose(hand.Right, hand.JointIndexProximal)
	baseB := hand.DefaultPose(hand.Right, hand.JointIndexIntermediate)
	want := rl.Vector3Distance(baseA.Position, baseB.Position)

	for _, at := range []float64{0, 0.37, 1.25, 10} {
		a, okA := e.JointPose(hand.Right, hand.JointIndexProximal, at)
		b, okB := e.JointPose(hand.Right, hand.JointIndexIntermediate, at)
		if !okA || !okB {
			t.Fatalf("t=%v: emulator reported joints untracked", at)
		}
		got := rl.Vector3Distance(a.Position, b.Position)
		if d := got - want; d > 1e-5 || d < -1e-5 {
			t.Errorf("t=%v: bone length %v, want %v", at, got, want)
		}
	}
}

func TestEmulatorMovesOverTime(t *testing.T) {
	e := NewEmulator()
	p0, _ := e.JointPose(hand.Left, hand.JointPalm, 0)
	p1, _ := e.JointPose(hand.Left, hand.JointPalm, 0.5)
	if rl.Vector3Distance(p0.Position, p1.Position) < 1e-4 {
		t.Error("emulated hand did not move between samples")
	}
}

func TestEmulatorHandsOutOfPhase(t *testing.T) {
	e := NewEmulator()
	const at = 0.25
	l, _ := e.JointPose(hand.Left, hand.JointPalm, at)
	r, _ := e.JointPose(hand.Right, hand.JointPalm, at)

	lOff := rl.Vector3Subtract(l.Position, hand.DefaultPose(hand.Left, hand.JointPalm).Position)
	rOff := rl.Vector3Subtract(r.Position, hand.DefaultPose(hand.Right, hand.JointPalm).Position)
	if rl.Vector3Distance(lOff, rOff) < 1e-4 {
		t.Error("hands drift in lockstep; expected per-hand phase")
	}
}
