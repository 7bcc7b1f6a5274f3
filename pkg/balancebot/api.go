package balancebot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"balancebot/internal/io"
	"balancebot/internal/model"
	"balancebot/internal/params"
	"balancebot/internal/policy"
	"balancebot/internal/rig"
	"balancebot/internal/sim"
	"balancebot/internal/stats"
	"balancebot/internal/storage"
)

const (
	defaultBenchmarksDir = "benchmarks"
	defaultExportsDir    = "exports"
	defaultDBPath        = "balancebot.db"
)

type Options struct {
	StoreKind     string
	DBPath        string
	BenchmarksDir string
	ExportsDir    string
}

type Client struct {
	store storage.Store

	benchmarksDir string
	exportsDir    string
	storeKind     string

	initialized bool
}

type InferRequest struct {
	Model string
	Angle float64
	Rate  float64
}

type InferResult struct {
	Model       string
	Action      string
	ActionIndex int
	Torque      float64
}

type TraceResult struct {
	Model        string
	NormAngle    float32
	NormVelocity float32
	Hidden       []float32
	Scores       []float32
	Action       string
	ActionIndex  int
	Torque       float64
}

type ModelItem struct {
	ID        string
	Label     string
	Grade     string
	TrainedAt string
	Arch      model.Architecture
}

type BenchRequest struct {
	Model           string
	Mode            string
	Episodes        int
	StepsPerEpisode int
	StartAngles     []float64
	Workers         int
	UseRig          bool
}

type BenchSummary struct {
	RunID         string
	Model         string
	Mode          string
	ArtifactsDir  string
	Episodes      []model.EpisodeDiagnostics
	RewardSeries  []float64
	Fitness       float64
	AvgReward     float64
	AvgStepsAlive float64
	FallCount     int
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID        string
	CreatedAtUTC string
	Model        string
	Env          string
	Mode         string
	Episodes     int
	AvgReward    float64
	FallCount    int
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
}

type ExportSummary struct {
	RunID     string
	Directory string
}

type HistoryRequest struct {
	RunID  string
	Latest bool
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	benchmarksDir := opts.BenchmarksDir
	if benchmarksDir == "" {
		benchmarksDir = defaultBenchmarksDir
	}
	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:         store,
		benchmarksDir: benchmarksDir,
		exportsDir:    exportsDir,
		storeKind:     storeKind,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Init initializes the store and seeds it with the shipped model profiles.
func (c *Client) Init(ctx context.Context) error {
	if c.initialized {
		return nil
	}
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	for _, id := range params.Names() {
		spec, err := params.Resolve(id)
		if err != nil {
			return err
		}
		if err := c.store.SaveModelProfile(ctx, params.ToModelProfile(spec)); err != nil {
			return fmt.Errorf("seed model profile %s: %w", id, err)
		}
	}
	c.initialized = true
	return nil
}

func (c *Client) Infer(ctx context.Context, req InferRequest) (InferResult, error) {
	net, spec, err := c.resolveNetwork(ctx, req.Model)
	if err != nil {
		return InferResult{}, err
	}

	action := net.SelectAction(float32(req.Angle), float32(req.Rate))
	torque, err := policy.TorqueForAction(action)
	if err != nil {
		return InferResult{}, err
	}
	return InferResult{
		Model:       spec.ID,
		Action:      action.String(),
		ActionIndex: int(action),
		Torque:      float64(torque),
	}, nil
}

func (c *Client) Trace(ctx context.Context, req InferRequest) (TraceResult, error) {
	net, spec, err := c.resolveNetwork(ctx, req.Model)
	if err != nil {
		return TraceResult{}, err
	}

	ev := net.Evaluate(float32(req.Angle), float32(req.Rate))
	torque, err := policy.TorqueForAction(ev.Action)
	if err != nil {
		return TraceResult{}, err
	}
	return TraceResult{
		Model:        spec.ID,
		NormAngle:    ev.NormAngle,
		NormVelocity: ev.NormVelocity,
		Hidden:       append([]float32(nil), ev.Hidden[:]...),
		Scores:       append([]float32(nil), ev.Scores[:]...),
		Action:       ev.Action.String(),
		ActionIndex:  int(ev.Action),
		Torque:       float64(torque),
	}, nil
}

func (c *Client) Models(_ context.Context) ([]ModelItem, error) {
	ids := params.Names()
	out := make([]ModelItem, 0, len(ids))
	for _, id := range ids {
		spec, err := params.Resolve(id)
		if err != nil {
			return nil, err
		}
		profile := params.ToModelProfile(spec)
		out = append(out, ModelItem{
			ID:        profile.ID,
			Label:     profile.Label,
			Grade:     profile.Grade,
			TrainedAt: profile.TrainedAt,
			Arch:      profile.Arch,
		})
	}
	return out, nil
}

func (c *Client) Bench(ctx context.Context, req BenchRequest) (BenchSummary, error) {
	if req.Mode == "" {
		req.Mode = string(sim.ModeNominal)
	}

	net, spec, err := c.resolveNetwork(ctx, req.Model)
	if err != nil {
		return BenchSummary{}, err
	}

	factory := sim.DriverFactory(func() (sim.Driver, error) {
		return sim.NewNetworkDriver(net), nil
	})
	if req.UseRig {
		factory = func() (sim.Driver, error) {
			return sim.NewRigDriver(net, rig.NewTwoWheelBalancerRig(), io.BalanceBenchEnvName)
		}
	}

	cfg := sim.BenchConfig{
		Mode:            sim.Mode(req.Mode),
		Episodes:        req.Episodes,
		StepsPerEpisode: req.StepsPerEpisode,
		StartAngles:     append([]float64(nil), req.StartAngles...),
		Workers:         req.Workers,
	}
	result, err := sim.RunBench(ctx, cfg, factory)
	if err != nil {
		return BenchSummary{}, err
	}

	now := time.Now().UTC()
	runID := fmt.Sprintf("%s-%s", spec.ID, uuid.NewString())

	if err := c.Init(ctx); err != nil {
		return BenchSummary{}, err
	}
	if err := c.store.SaveRewardHistory(ctx, runID, result.RewardSeries); err != nil {
		return BenchSummary{}, err
	}
	if err := c.store.SaveEpisodeDiagnostics(ctx, runID, result.Episodes); err != nil {
		return BenchSummary{}, err
	}

	summary := stats.BenchSummary{
		RunID:         runID,
		Model:         spec.ID,
		Mode:          string(result.Mode),
		Episodes:      len(result.Episodes),
		Fitness:       result.Fitness,
		AvgReward:     result.AvgReward,
		AvgStepsAlive: result.AvgStepsAlive,
		FallCount:     result.FallCount,
	}
	runDir, err := stats.WriteRunArtifacts(c.benchmarksDir, stats.RunArtifacts{
		Config: stats.RunConfig{
			RunID:           runID,
			Model:           spec.ID,
			Env:             io.BalanceBenchEnvName,
			Mode:            string(result.Mode),
			Episodes:        len(result.Episodes),
			StepsPerEpisode: result.StepsPerEpisode,
			StartAngles:     append([]float64(nil), req.StartAngles...),
			Workers:         req.Workers,
			StoreKind:       c.storeKind,
			CreatedAtUTC:    now.Format(time.RFC3339Nano),
		},
		Summary:      summary,
		Episodes:     result.Episodes,
		RewardSeries: result.RewardSeries,
	})
	if err != nil {
		return BenchSummary{}, err
	}

	if err := stats.AppendRunIndex(c.benchmarksDir, stats.RunIndexEntry{
		RunID:        runID,
		Model:        spec.ID,
		Env:          io.BalanceBenchEnvName,
		Mode:         string(result.Mode),
		Episodes:     len(result.Episodes),
		AvgReward:    result.AvgReward,
		FallCount:    result.FallCount,
		CreatedAtUTC: now.Format(time.RFC3339Nano),
	}); err != nil {
		return BenchSummary{}, err
	}

	return BenchSummary{
		RunID:         runID,
		Model:         spec.ID,
		Mode:          string(result.Mode),
		ArtifactsDir:  filepath.Clean(runDir),
		Episodes:      result.Episodes,
		RewardSeries:  append([]float64(nil), result.RewardSeries...),
		Fitness:       result.Fitness,
		AvgReward:     result.AvgReward,
		AvgStepsAlive: result.AvgStepsAlive,
		FallCount:     result.FallCount,
	}, nil
}

func (c *Client) Runs(_ context.Context, req RunsRequest) ([]RunItem, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}

	entries, err := stats.ListRunIndex(c.benchmarksDir)
	if err != nil {
		return nil, err
	}
	if len(entries) > req.Limit {
		entries = entries[:req.Limit]
	}

	out := make([]RunItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, RunItem{
			RunID:        e.RunID,
			CreatedAtUTC: e.CreatedAtUTC,
			Model:        e.Model,
			Env:          e.Env,
			Mode:         e.Mode,
			Episodes:     e.Episodes,
			AvgReward:    e.AvgReward,
			FallCount:    e.FallCount,
		})
	}
	return out, nil
}

func (c *Client) Export(_ context.Context, req ExportRequest) (ExportSummary, error) {
	if req.RunID != "" && req.Latest {
		return ExportSummary{}, errors.New("use either run id or latest")
	}
	if req.RunID == "" && !req.Latest {
		return ExportSummary{}, errors.New("export requires run id or latest")
	}
	if req.OutDir == "" {
		req.OutDir = c.exportsDir
	}

	runID := req.RunID
	if req.Latest {
		entries, err := stats.ListRunIndex(c.benchmarksDir)
		if err != nil {
			return ExportSummary{}, err
		}
		if len(entries) == 0 {
			return ExportSummary{}, errors.New("no runs available to export")
		}
		runID = entries[0].RunID
	}

	exportedDir, err := stats.ExportRunArtifacts(c.benchmarksDir, runID, req.OutDir)
	if err != nil {
		return ExportSummary{}, err
	}
	return ExportSummary{RunID: runID, Directory: filepath.Clean(exportedDir)}, nil
}

// History returns the per-episode average rewards recorded for a run.
func (c *Client) History(ctx context.Context, req HistoryRequest) ([]float64, error) {
	if req.RunID != "" && req.Latest {
		return nil, errors.New("use either run id or latest")
	}

	runID := req.RunID
	if req.Latest {
		entries, err := stats.ListRunIndex(c.benchmarksDir)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			return nil, errors.New("no runs available")
		}
		runID = entries[0].RunID
	}
	if runID == "" {
		return nil, errors.New("history requires run id or latest")
	}

	if err := c.Init(ctx); err != nil {
		return nil, err
	}
	history, ok, err := c.store.GetRewardHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if ok {
		return history, nil
	}

	series, ok, err := stats.ReadRewardSeries(c.benchmarksDir, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("reward history not found for run id: %s", runID)
	}
	return series, nil
}

func (c *Client) resolveNetwork(ctx context.Context, name string) (*policy.Network, params.ProfileSpec, error) {
	spec, err := params.Resolve(name)
	if err == nil {
		return policy.NewNetwork(spec.Parameters), spec, nil
	}

	// Fall back to profiles persisted in the store under their exact id.
	if initErr := c.Init(ctx); initErr != nil {
		return nil, params.ProfileSpec{}, initErr
	}
	profile, ok, storeErr := c.store.GetModelProfile(ctx, name)
	if storeErr != nil {
		return nil, params.ProfileSpec{}, storeErr
	}
	if !ok {
		return nil, params.ProfileSpec{}, err
	}
	parameters, convErr := params.FromModelProfile(profile)
	if convErr != nil {
		return nil, params.ProfileSpec{}, convErr
	}
	stored := params.ProfileSpec{
		ID:         profile.ID,
		Label:      profile.Label,
		Grade:      profile.Grade,
		TrainedAt:  profile.TrainedAt,
		Parameters: parameters,
	}
	return policy.NewNetwork(parameters), stored, nil
}
