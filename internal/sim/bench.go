package sim

import (
	"context"
	"fmt"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"balancebot/internal/model"
)

type Mode string

const (
	ModeNominal Mode = "nominal"
	ModeWide    Mode = "wide"
	ModeStress  Mode = "stress"
)

// ModeConfig fixes the start-angle sweep and step budget for a bench mode.
type ModeConfig struct {
	StartAngles     []float64
	StepsPerEpisode int
}

var modeConfigs = map[Mode]ModeConfig{
	ModeNominal: {
		StartAngles:     []float64{-0.15, -0.05, 0, 0.05, 0.15},
		StepsPerEpisode: 300,
	},
	ModeWide: {
		StartAngles:     []float64{-0.3, -0.15, 0.15, 0.3},
		StepsPerEpisode: 240,
	},
	ModeStress: {
		StartAngles:     []float64{-0.5, -0.25, 0.25, 0.5},
		StepsPerEpisode: 240,
	},
}

func ConfigForMode(mode Mode) (ModeConfig, error) {
	cfg, ok := modeConfigs[mode]
	if !ok {
		return ModeConfig{}, fmt.Errorf("unknown bench mode: %s", mode)
	}
	out := ModeConfig{
		StartAngles:     append([]float64(nil), cfg.StartAngles...),
		StepsPerEpisode: cfg.StepsPerEpisode,
	}
	return out, nil
}

func Modes() []Mode {
	return []Mode{ModeNominal, ModeWide, ModeStress}
}

// BenchConfig configures a bench run. Zero Episodes means one episode per
// start angle; zero StepsPerEpisode and StartAngles fall back to the mode
// defaults; zero Workers means GOMAXPROCS.
type BenchConfig struct {
	Mode            Mode
	Episodes        int
	StepsPerEpisode int
	StartAngles     []float64
	Workers         int
}

func (c BenchConfig) normalized() (BenchConfig, error) {
	mode, err := ConfigForMode(c.Mode)
	if err != nil {
		return BenchConfig{}, err
	}
	if len(c.StartAngles) == 0 {
		c.StartAngles = mode.StartAngles
	}
	if c.StepsPerEpisode <= 0 {
		c.StepsPerEpisode = mode.StepsPerEpisode
	}
	if c.Episodes <= 0 {
		c.Episodes = len(c.StartAngles)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}

// BenchResult aggregates a full bench run. RewardSeries holds one average
// reward per episode, in episode order.
type BenchResult struct {
	Mode            Mode
	Episodes        []model.EpisodeDiagnostics
	RewardSeries    []float64
	Fitness         float64
	AvgReward       float64
	AvgStepsAlive   float64
	FallCount       int
	StepsPerEpisode int
}

// RunBench sweeps the configured start angles, running episodes in parallel.
// Episode i starts from StartAngles[i mod len(StartAngles)].
func RunBench(ctx context.Context, cfg BenchConfig, newDriver DriverFactory) (BenchResult, error) {
	if newDriver == nil {
		return BenchResult{}, fmt.Errorf("driver factory is required")
	}
	cfg, err := cfg.normalized()
	if err != nil {
		return BenchResult{}, err
	}

	episodes := make([]model.EpisodeDiagnostics, cfg.Episodes)
	series := make([]float64, cfg.Episodes)

	workerPool := pool.New().WithMaxGoroutines(cfg.Workers).WithErrors().WithContext(ctx)
	for i := 0; i < cfg.Episodes; i++ {
		episode := i
		startAngle := cfg.StartAngles[i%len(cfg.StartAngles)]
		workerPool.Go(func(ctx context.Context) error {
			driver, err := newDriver()
			if err != nil {
				return fmt.Errorf("episode %d: %w", episode, err)
			}
			result, err := RunEpisode(ctx, driver, startAngle, cfg.StepsPerEpisode)
			if err != nil {
				return fmt.Errorf("episode %d: %w", episode, err)
			}
			result.Diagnostics.Episode = episode
			episodes[episode] = result.Diagnostics
			series[episode] = result.Diagnostics.AvgReward
			return nil
		})
	}
	if err := workerPool.Wait(); err != nil {
		return BenchResult{}, err
	}

	result := BenchResult{
		Mode:            cfg.Mode,
		Episodes:        episodes,
		RewardSeries:    series,
		StepsPerEpisode: cfg.StepsPerEpisode,
	}
	var totalReward, totalSteps float64
	for _, d := range episodes {
		totalReward += d.AvgReward * float64(d.StepsSurvived)
		totalSteps += float64(d.StepsSurvived)
		result.Fitness += d.AvgReward
		if d.Fell {
			result.FallCount++
		}
	}
	if totalSteps > 0 {
		result.AvgReward = totalReward / totalSteps
	}
	result.AvgStepsAlive = totalSteps / float64(len(episodes))
	return result, nil
}
