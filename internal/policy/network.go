package policy

import (
	"errors"
	"fmt"
)

// Network architecture is fixed at compile time; the shipped parameter sets
// are interchangeable 2-64-3 dumps.
const (
	InputSize  = 2
	HiddenSize = 64
	OutputSize = 3
)

// scoreSentinel sits below any reachable output score so the argmax scan
// keeps the lowest index on exact ties (strict > comparison).
const scoreSentinel = float32(-1e10)

type Action int

const (
	ActionLeanLeft Action = iota
	ActionBrake
	ActionLeanRight
)

var ErrInvalidAction = errors.New("action index out of range")

var actionTorques = [OutputSize]float32{-1.0, 0.0, 1.0}

var actionLabels = [OutputSize]string{"lean_left", "brake", "lean_right"}

func (a Action) String() string {
	if a < 0 || int(a) >= OutputSize {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionLabels[a]
}

// Parameters holds one trained parameter set in fixed-size storage. Weight
// matrices are flat and row-major: input→hidden by input index, hidden→output
// by hidden index, matching the reference dumps. Parameters are never mutated
// after construction, so a single set may back any number of concurrent
// inference calls.
type Parameters struct {
	InputHidden  [InputSize * HiddenSize]float32
	HiddenBias   [HiddenSize]float32
	HiddenOutput [HiddenSize * OutputSize]float32
	OutputBias   [OutputSize]float32
}

// Network evaluates a fixed feed-forward policy over immutable parameters.
// Inference performs no allocation and has no error path; callers must pass
// finite observations (NaN/Inf are a documented precondition violation, not
// checked here to keep the per-tick cost flat).
type Network struct {
	params *Parameters
}

func NewNetwork(params *Parameters) *Network {
	return &Network{params: params}
}

// Evaluation exposes the intermediate state of one forward pass for tracing
// and diagnostics.
type Evaluation struct {
	NormAngle    float32
	NormVelocity float32
	Hidden       [HiddenSize]float32
	Scores       [OutputSize]float32
	Action       Action
}

// SelectAction maps an observation (angle rad, angular velocity rad/s) to a
// discrete action index. Pure and deterministic for fixed parameters.
func (n *Network) SelectAction(angle, angularVelocity float32) Action {
	normAngle, normVelocity := NormalizeObservation(angle, angularVelocity)

	var hidden [HiddenSize]float32
	n.hiddenLayer(normAngle, normVelocity, &hidden)

	best := ActionLeanLeft
	maxScore := scoreSentinel
	for o := 0; o < OutputSize; o++ {
		score := n.outputScore(&hidden, o)
		if score > maxScore {
			maxScore = score
			best = Action(o)
		}
	}
	return best
}

// Evaluate runs the same forward pass as SelectAction and returns every
// intermediate tensor.
func (n *Network) Evaluate(angle, angularVelocity float32) Evaluation {
	var ev Evaluation
	ev.NormAngle, ev.NormVelocity = NormalizeObservation(angle, angularVelocity)
	n.hiddenLayer(ev.NormAngle, ev.NormVelocity, &ev.Hidden)

	ev.Action = ActionLeanLeft
	maxScore := scoreSentinel
	for o := 0; o < OutputSize; o++ {
		ev.Scores[o] = n.outputScore(&ev.Hidden, o)
		if ev.Scores[o] > maxScore {
			maxScore = ev.Scores[o]
			ev.Action = Action(o)
		}
	}
	return ev
}

// hiddenLayer accumulates bias plus the two input terms in float32, summing
// input index 0 then 1 so results reproduce the reference vectors bit for
// bit, then applies ReLU.
func (n *Network) hiddenLayer(normAngle, normVelocity float32, hidden *[HiddenSize]float32) {
	for h := 0; h < HiddenSize; h++ {
		sum := n.params.HiddenBias[h]
		sum += normAngle * n.params.InputHidden[h]
		sum += normVelocity * n.params.InputHidden[HiddenSize+h]
		if sum < 0 {
			sum = 0
		}
		hidden[h] = sum
	}
}

// outputScore is the raw linear Q-value for one output unit. No activation:
// the argmax consumes unnormalized scores directly.
func (n *Network) outputScore(hidden *[HiddenSize]float32, o int) float32 {
	sum := n.params.OutputBias[o]
	for h := 0; h < HiddenSize; h++ {
		sum += hidden[h] * n.params.HiddenOutput[h*OutputSize+o]
	}
	return sum
}

// TorqueForAction maps an action index to a motor torque via the fixed
// {-1, 0, +1} table. An index outside {0,1,2} is a caller contract violation.
func TorqueForAction(a Action) (float32, error) {
	if a < 0 || int(a) >= OutputSize {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	return actionTorques[a], nil
}

// SafeTorque is the fail-safe mapping for real-time loops: an invalid action
// degrades to the brake torque instead of surfacing an error.
func SafeTorque(a Action) float32 {
	if a < 0 || int(a) >= OutputSize {
		return actionTorques[ActionBrake]
	}
	return actionTorques[a]
}
