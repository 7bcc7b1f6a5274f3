package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"balancebot/internal/storage"
	botapi "balancebot/pkg/balancebot"
)

const (
	benchmarksDir = "benchmarks"
	exportsDir    = "exports"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "infer":
		return runInfer(ctx, args[1:])
	case "trace":
		return runTrace(ctx, args[1:])
	case "models":
		return runModels(ctx, args[1:])
	case "bench":
		return runBench(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "history":
		return runHistory(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInfer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	modelName := fs.String("model", "", "model profile id or alias (default: shipped default)")
	angle := fs.Float64("angle", 0, "tilt angle in radians")
	rate := fs.Float64("rate", 0, "tilt angular velocity in radians/second")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	result, err := client.Infer(ctx, botapi.InferRequest{Model: *modelName, Angle: *angle, Rate: *rate})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(result)
	}
	fmt.Printf("model=%s angle=%.6f rate=%.6f action=%s action_index=%d torque=%.1f\n",
		result.Model, *angle, *rate, result.Action, result.ActionIndex, result.Torque)
	return nil
}

func runTrace(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("trace", flag.ContinueOnError)
	modelName := fs.String("model", "", "model profile id or alias (default: shipped default)")
	angle := fs.Float64("angle", 0, "tilt angle in radians")
	rate := fs.Float64("rate", 0, "tilt angular velocity in radians/second")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	result, err := client.Trace(ctx, botapi.InferRequest{Model: *modelName, Angle: *angle, Rate: *rate})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(result)
	}
	activeHidden := 0
	for _, h := range result.Hidden {
		if h > 0 {
			activeHidden++
		}
	}
	fmt.Printf("model=%s norm_angle=%.6f norm_velocity=%.6f active_hidden=%d/%d\n",
		result.Model, result.NormAngle, result.NormVelocity, activeHidden, len(result.Hidden))
	for i, score := range result.Scores {
		fmt.Printf("score index=%d value=%.6f\n", i, score)
	}
	fmt.Printf("action=%s action_index=%d torque=%.1f\n", result.Action, result.ActionIndex, result.Torque)
	return nil
}

func runModels(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("models", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Models(ctx)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(items)
	}
	for _, item := range items {
		fmt.Printf("id=%s grade=%s trained_at=%s arch=%dx%dx%d label=%q\n",
			item.ID, item.Grade, item.TrainedAt, item.Arch.Input, item.Arch.Hidden, item.Arch.Output, item.Label)
	}
	return nil
}

type benchFileConfig struct {
	Model           string    `json:"model"`
	Mode            string    `json:"mode"`
	Episodes        int       `json:"episodes"`
	StepsPerEpisode int       `json:"steps_per_episode"`
	StartAngles     []float64 `json:"start_angles"`
	Workers         int       `json:"workers"`
	UseRig          bool      `json:"use_rig"`
}

func runBench(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional JSON bench config; explicit flags override it")
	modelName := fs.String("model", "", "model profile id or alias (default: shipped default)")
	mode := fs.String("mode", "nominal", "bench mode: nominal|wide|stress")
	episodes := fs.Int("episodes", 0, "episode count (default: one per start angle)")
	steps := fs.Int("steps", 0, "step budget per episode (default: mode preset)")
	workers := fs.Int("workers", 0, "parallel episode workers (default: GOMAXPROCS)")
	useRig := fs.Bool("rig", false, "drive through registered rig components")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "balancebot.db", "sqlite database path")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := botapi.BenchRequest{
		Model:           *modelName,
		Mode:            *mode,
		Episodes:        *episodes,
		StepsPerEpisode: *steps,
		Workers:         *workers,
		UseRig:          *useRig,
	}
	if *configPath != "" {
		fileReq, err := loadBenchConfig(*configPath)
		if err != nil {
			return err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["model"] && fileReq.Model != "" {
			req.Model = fileReq.Model
		}
		if !set["mode"] && fileReq.Mode != "" {
			req.Mode = fileReq.Mode
		}
		if !set["episodes"] && fileReq.Episodes > 0 {
			req.Episodes = fileReq.Episodes
		}
		if !set["steps"] && fileReq.StepsPerEpisode > 0 {
			req.StepsPerEpisode = fileReq.StepsPerEpisode
		}
		if !set["workers"] && fileReq.Workers > 0 {
			req.Workers = fileReq.Workers
		}
		if !set["rig"] && fileReq.UseRig {
			req.UseRig = true
		}
		if len(fileReq.StartAngles) > 0 {
			req.StartAngles = fileReq.StartAngles
		}
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "benching model=%s mode=%s...\n", req.Model, req.Mode)
	}

	summary, err := client.Bench(ctx, req)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(summary)
	}
	fmt.Printf("bench completed run_id=%s model=%s mode=%s episodes=%d\n",
		summary.RunID, summary.Model, summary.Mode, len(summary.Episodes))
	for _, d := range summary.Episodes {
		fmt.Printf("episode=%d start_angle=%.3f steps=%d avg_reward=%.6f fell=%t left=%d brake=%d right=%d\n",
			d.Episode, d.StartAngle, d.StepsSurvived, d.AvgReward, d.Fell, d.LeftSteps, d.BrakeSteps, d.RightSteps)
	}
	fmt.Printf("fitness=%.6f avg_reward=%.6f avg_steps_alive=%.1f fall_count=%d\n",
		summary.Fitness, summary.AvgReward, summary.AvgStepsAlive, summary.FallCount)
	fmt.Printf("artifacts_dir=%s\n", filepath.Clean(summary.ArtifactsDir))
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	limit := fs.Int("limit", 20, "max runs to list")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	items, err := client.Runs(ctx, botapi.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(items)
	}
	for _, item := range items {
		created := item.CreatedAtUTC
		if parsed, err := time.Parse(time.RFC3339Nano, item.CreatedAtUTC); err == nil {
			created = humanize.Time(parsed)
		}
		fmt.Printf("run_id=%s created=%s model=%s env=%s mode=%s episodes=%s avg_reward=%.6f fall_count=%d\n",
			item.RunID, created, item.Model, item.Env, item.Mode,
			humanize.Comma(int64(item.Episodes)), item.AvgReward, item.FallCount)
	}
	return nil
}

func runHistory(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to inspect")
	latest := fs.Bool("latest", false, "use the most recent run")
	asJSON := fs.Bool("json", false, "emit JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	history, err := client.History(ctx, botapi.HistoryRequest{RunID: *runID, Latest: *latest})
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(history)
	}
	for i, reward := range history {
		fmt.Printf("episode=%d avg_reward=%.6f\n", i, reward)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to export")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", exportsDir, "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient("", "")
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	exported, err := client.Export(ctx, botapi.ExportRequest{RunID: *runID, Latest: *latest, OutDir: *outDir})
	if err != nil {
		return err
	}
	fmt.Printf("exported run_id=%s to=%s\n", exported.RunID, filepath.Clean(exported.Directory))
	return nil
}

func loadBenchConfig(path string) (benchFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return benchFileConfig{}, err
	}
	var cfg benchFileConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return benchFileConfig{}, fmt.Errorf("parse bench config %s: %w", path, err)
	}
	return cfg, nil
}

func newClient(storeKind, dbPath string) (*botapi.Client, error) {
	return botapi.New(botapi.Options{
		StoreKind:     storeKind,
		DBPath:        dbPath,
		BenchmarksDir: benchmarksDir,
		ExportsDir:    exportsDir,
	})
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: balancebotctl <infer|trace|models|bench|runs|history|export> [flags]", msg)
}
