package sim

import (
	"context"
	"fmt"
	"math"

	"balancebot/internal/model"
)

// Inverted-pendulum bench dynamics, integrated with explicit Euler steps.
const (
	TimeStep    = 0.02
	gravityGain = 9.8
	torqueGain  = 12.0

	// FallLimit is the tilt beyond which the robot is on the ground.
	FallLimit = math.Pi / 3

	maxTorque = 1.0
)

type botState struct {
	angle float64
	rate  float64
}

func (s *botState) step(torque float64) {
	if torque > maxTorque {
		torque = maxTorque
	} else if torque < -maxTorque {
		torque = -maxTorque
	}
	accel := gravityGain*math.Sin(s.angle) + torqueGain*torque
	s.rate += accel * TimeStep
	s.angle += s.rate * TimeStep
}

func (s *botState) fallen() bool {
	return math.Abs(s.angle) > FallLimit
}

func stepReward(angle float64) float64 {
	penalty := math.Abs(angle) / FallLimit
	if penalty > 1 {
		penalty = 1
	}
	return 1 - penalty
}

// EpisodeResult holds the per-step reward trace and the summary diagnostics
// for a single bench episode.
type EpisodeResult struct {
	Diagnostics model.EpisodeDiagnostics
	Rewards     []float64
}

// RunEpisode drives the bot from startAngle at rest for up to maxSteps ticks.
// The episode ends early when the bot falls or the context is cancelled.
func RunEpisode(ctx context.Context, driver Driver, startAngle float64, maxSteps int) (EpisodeResult, error) {
	if driver == nil {
		return EpisodeResult{}, fmt.Errorf("driver is required")
	}
	if maxSteps <= 0 {
		return EpisodeResult{}, fmt.Errorf("invalid step budget: %d", maxSteps)
	}

	state := botState{angle: startAngle}
	result := EpisodeResult{
		Diagnostics: model.EpisodeDiagnostics{StartAngle: startAngle},
		Rewards:     make([]float64, 0, maxSteps),
	}

	for step := 0; step < maxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return EpisodeResult{}, err
		}

		torque, err := driver.Drive(ctx, state.angle, state.rate)
		if err != nil {
			return EpisodeResult{}, fmt.Errorf("step %d: %w", step, err)
		}

		switch {
		case torque < 0:
			result.Diagnostics.LeftSteps++
		case torque > 0:
			result.Diagnostics.RightSteps++
		default:
			result.Diagnostics.BrakeSteps++
		}

		state.step(torque)
		result.Rewards = append(result.Rewards, stepReward(state.angle))
		result.Diagnostics.StepsSurvived++

		if state.fallen() {
			result.Diagnostics.Fell = true
			break
		}
	}

	var total float64
	for _, r := range result.Rewards {
		total += r
	}
	if len(result.Rewards) > 0 {
		result.Diagnostics.AvgReward = total / float64(len(result.Rewards))
	}
	return result, nil
}
