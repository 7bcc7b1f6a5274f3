package policy

import (
	"errors"
	"math"
	"testing"
)

func uniformParameters(weight, bias float32) *Parameters {
	p := &Parameters{}
	for i := range p.InputHidden {
		p.InputHidden[i] = weight
	}
	for i := range p.HiddenBias {
		p.HiddenBias[i] = bias
	}
	for i := range p.HiddenOutput {
		p.HiddenOutput[i] = weight
	}
	for i := range p.OutputBias {
		p.OutputBias[i] = bias
	}
	return p
}

func TestZeroObservationSelectsMaxBias(t *testing.T) {
	// With zero inputs every hidden pre-activation equals its bias; with all
	// weights one and zero biases the hidden layer is all zeros, so each
	// output score collapses to its output bias.
	p := uniformParameters(1.0, 0)
	p.OutputBias = [OutputSize]float32{0.5, 2.5, 1.5}

	net := NewNetwork(p)
	ev := net.Evaluate(0, 0)
	if ev.NormAngle != 0 || ev.NormVelocity != 0 {
		t.Fatalf("expected zero normalized inputs, got=%f %f", ev.NormAngle, ev.NormVelocity)
	}
	for h, v := range ev.Hidden {
		if v != 0 {
			t.Fatalf("expected zero hidden activation at %d, got=%f", h, v)
		}
	}
	for o := 0; o < OutputSize; o++ {
		if ev.Scores[o] != p.OutputBias[o] {
			t.Fatalf("expected score=bias at %d: got=%f want=%f", o, ev.Scores[o], p.OutputBias[o])
		}
	}
	if ev.Action != ActionBrake {
		t.Fatalf("expected max-bias action, got=%v", ev.Action)
	}
}

func TestTieBreakKeepsLowestIndex(t *testing.T) {
	// Zero weights force all scores to the output biases; equal biases at
	// indices 0 and 2 must resolve to index 0.
	p := uniformParameters(0, 0)
	p.OutputBias = [OutputSize]float32{3.0, 1.0, 3.0}

	net := NewNetwork(p)
	if got := net.SelectAction(0.2, -1.5); got != ActionLeanLeft {
		t.Fatalf("expected lowest-index tie winner, got=%v", got)
	}

	p.OutputBias = [OutputSize]float32{1.0, 2.0, 2.0}
	if got := net.SelectAction(0, 0); got != ActionBrake {
		t.Fatalf("expected index 1 over equal index 2, got=%v", got)
	}
}

func TestSelectActionDeterministic(t *testing.T) {
	p := uniformParameters(0.25, -0.1)
	net := NewNetwork(p)

	first := net.SelectAction(0.05, -0.2)
	for i := 0; i < 100; i++ {
		if got := net.SelectAction(0.05, -0.2); got != first {
			t.Fatalf("non-deterministic action at call %d: got=%v want=%v", i, got, first)
		}
	}
}

func TestEvaluateMatchesSelectAction(t *testing.T) {
	p := uniformParameters(0.5, 0.2)
	p.OutputBias = [OutputSize]float32{-1, 0.3, 0.1}
	net := NewNetwork(p)

	observations := [][2]float32{
		{0, 0},
		{0.05, -0.2},
		{-0.4, 3.0},
		{2.0, -20.0},
	}
	for _, obs := range observations {
		ev := net.Evaluate(obs[0], obs[1])
		if got := net.SelectAction(obs[0], obs[1]); got != ev.Action {
			t.Fatalf("evaluate/select mismatch for %v: %v != %v", obs, ev.Action, got)
		}
		best := ev.Scores[ev.Action]
		for o := 0; o < OutputSize; o++ {
			if ev.Scores[o] > best {
				t.Fatalf("action %v is not the argmax for %v: scores=%v", ev.Action, obs, ev.Scores)
			}
		}
	}
}

func TestTorqueForAction(t *testing.T) {
	want := map[Action]float32{
		ActionLeanLeft:  -1.0,
		ActionBrake:     0.0,
		ActionLeanRight: 1.0,
	}
	for action, torque := range want {
		got, err := TorqueForAction(action)
		if err != nil {
			t.Fatalf("torque for %v: %v", action, err)
		}
		if got != torque {
			t.Fatalf("unexpected torque for %v: got=%f want=%f", action, got, torque)
		}
	}

	if _, err := TorqueForAction(Action(3)); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected invalid action error, got=%v", err)
	}
	if _, err := TorqueForAction(Action(-1)); !errors.Is(err, ErrInvalidAction) {
		t.Fatalf("expected invalid action error, got=%v", err)
	}
}

func TestSafeTorqueFailsToBrake(t *testing.T) {
	if got := SafeTorque(Action(7)); got != 0 {
		t.Fatalf("expected brake torque for invalid action, got=%f", got)
	}
	if got := SafeTorque(ActionLeanRight); got != 1.0 {
		t.Fatalf("expected pass-through torque, got=%f", got)
	}
}

func TestBrakeTorqueIndependentOfParameters(t *testing.T) {
	got, err := TorqueForAction(ActionBrake)
	if err != nil {
		t.Fatalf("brake torque: %v", err)
	}
	if got != 0.0 {
		t.Fatalf("brake torque must be exactly zero, got=%f", got)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeanLeft.String() != "lean_left" || ActionBrake.String() != "brake" || ActionLeanRight.String() != "lean_right" {
		t.Fatalf("unexpected action labels: %v %v %v", ActionLeanLeft, ActionBrake, ActionLeanRight)
	}
	if Action(9).String() != "action(9)" {
		t.Fatalf("unexpected out-of-range label: %v", Action(9))
	}
}

func TestConcurrentInferenceSharedParameters(t *testing.T) {
	p := uniformParameters(0.1, 0.05)
	net := NewNetwork(p)
	want := net.SelectAction(0.3, -2.0)

	done := make(chan Action, 8)
	for i := 0; i < 8; i++ {
		go func() {
			got := want
			for j := 0; j < 1000; j++ {
				got = net.SelectAction(0.3, -2.0)
			}
			done <- got
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent inference diverged: got=%v want=%v", got, want)
		}
	}
}

func TestHiddenSummationOrder(t *testing.T) {
	// One asymmetric hidden unit: bias 0.5, input weights 2 (angle term) and
	// -4 (velocity term). Pre-activation for (norm 0.25, norm 0.1) must be
	// 0.5 + 0.25*2 + 0.1*-4.
	p := uniformParameters(0, 0)
	p.HiddenBias[0] = 0.5
	p.InputHidden[0] = 2
	p.InputHidden[HiddenSize] = -4
	p.HiddenOutput[0*OutputSize+2] = 1

	angle := float32(0.25 * angleScale)
	velocity := float32(0.1 * velocityScale)
	ev := NewNetwork(p).Evaluate(angle, velocity)

	want := p.HiddenBias[0]
	want += ev.NormAngle * 2
	want += ev.NormVelocity * -4
	if ev.Hidden[0] != want {
		t.Fatalf("unexpected hidden activation: got=%f want=%f", ev.Hidden[0], want)
	}
	if ev.Scores[2] != want {
		t.Fatalf("unexpected output score: got=%f want=%f", ev.Scores[2], want)
	}
}

func TestReLUClipsNegativePreActivation(t *testing.T) {
	p := uniformParameters(0, 0)
	p.HiddenBias[5] = -2.5
	ev := NewNetwork(p).Evaluate(0, 0)
	if ev.Hidden[5] != 0 {
		t.Fatalf("expected ReLU clip to zero, got=%f", ev.Hidden[5])
	}
}

func TestNormalizationFeedsSaturatedInputs(t *testing.T) {
	p := uniformParameters(0, 0)
	net := NewNetwork(p)

	huge := net.Evaluate(100, -100)
	if huge.NormAngle != 1.0 || huge.NormVelocity != -1.0 {
		t.Fatalf("expected saturated normalized inputs, got=%f %f", huge.NormAngle, huge.NormVelocity)
	}
	atBound := net.Evaluate(float32(math.Pi/3), 10.0)
	if atBound.NormAngle != 1.0 || atBound.NormVelocity != 1.0 {
		t.Fatalf("expected exact bound saturation, got=%f %f", atBound.NormAngle, atBound.NormVelocity)
	}
}
