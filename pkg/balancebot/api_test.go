package balancebot

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"balancebot/internal/policy"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := New(Options{
		StoreKind:     "memory",
		BenchmarksDir: filepath.Join(t.TempDir(), "benchmarks"),
		ExportsDir:    filepath.Join(t.TempDir(), "exports"),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return client
}

func TestInferDefaultsToShippedModel(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	result, err := client.Infer(ctx, InferRequest{Angle: 0.1, Rate: -0.3})
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if result.Model != "two-wheel-bot-dqn-great" {
		t.Fatalf("expected default model, got %s", result.Model)
	}
	if result.ActionIndex < 0 || result.ActionIndex >= policy.OutputSize {
		t.Fatalf("action index out of range: %d", result.ActionIndex)
	}
	if result.Torque != -1 && result.Torque != 0 && result.Torque != 1 {
		t.Fatalf("torque outside fixed table: %f", result.Torque)
	}

	again, err := client.Infer(ctx, InferRequest{Angle: 0.1, Rate: -0.3})
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	if !reflect.DeepEqual(result, again) {
		t.Fatalf("inference is not deterministic: %+v vs %+v", result, again)
	}
}

func TestInferUnknownModel(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.Infer(context.Background(), InferRequest{Model: "no-such-model"}); err == nil {
		t.Fatal("expected unknown model error")
	}
}

func TestTraceAgreesWithInfer(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	infer, err := client.Infer(ctx, InferRequest{Model: "good", Angle: -0.2, Rate: 0.5})
	if err != nil {
		t.Fatalf("infer: %v", err)
	}
	trace, err := client.Trace(ctx, InferRequest{Model: "good", Angle: -0.2, Rate: 0.5})
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	if trace.Action != infer.Action || trace.ActionIndex != infer.ActionIndex || trace.Torque != infer.Torque {
		t.Fatalf("trace disagrees with infer:\ntrace %+v\ninfer %+v", trace, infer)
	}
	if len(trace.Hidden) != policy.HiddenSize || len(trace.Scores) != policy.OutputSize {
		t.Fatalf("unexpected trace shapes: hidden=%d scores=%d", len(trace.Hidden), len(trace.Scores))
	}
	for _, h := range trace.Hidden {
		if h < 0 {
			t.Fatalf("hidden activation below zero: %f", h)
		}
	}
}

func TestModelsListsShippedProfiles(t *testing.T) {
	client := newTestClient(t)

	items, err := client.Models(context.Background())
	if err != nil {
		t.Fatalf("models: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 shipped models, got %d", len(items))
	}
	for _, item := range items {
		if !strings.HasPrefix(item.ID, "two-wheel-bot-dqn-") {
			t.Fatalf("unexpected model id: %s", item.ID)
		}
		if item.Arch.Input != policy.InputSize || item.Arch.Hidden != policy.HiddenSize || item.Arch.Output != policy.OutputSize {
			t.Fatalf("unexpected architecture: %+v", item.Arch)
		}
	}
}

func TestBenchPersistsRunArtifacts(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.Bench(ctx, BenchRequest{Model: "great", Mode: "nominal", Workers: 2})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	if summary.RunID == "" || !strings.HasPrefix(summary.RunID, "two-wheel-bot-dqn-great-") {
		t.Fatalf("unexpected run id: %s", summary.RunID)
	}
	if len(summary.Episodes) != 5 || len(summary.RewardSeries) != 5 {
		t.Fatalf("expected 5 nominal episodes, got %+v", summary)
	}
	if _, err := os.Stat(filepath.Join(summary.ArtifactsDir, "summary.json")); err != nil {
		t.Fatalf("artifacts not written: %v", err)
	}

	runs, err := client.Runs(ctx, RunsRequest{})
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 || runs[0].RunID != summary.RunID {
		t.Fatalf("run index mismatch: %+v", runs)
	}
	if runs[0].Model != "two-wheel-bot-dqn-great" || runs[0].Mode != "nominal" {
		t.Fatalf("unexpected run entry: %+v", runs[0])
	}

	history, err := client.History(ctx, HistoryRequest{RunID: summary.RunID})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !reflect.DeepEqual(history, summary.RewardSeries) {
		t.Fatalf("history mismatch: %v vs %v", history, summary.RewardSeries)
	}
}

func TestBenchThroughRigComponents(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	// The rig tick path holds per-driver component state, so run it
	// single-worker and compare against the direct path.
	direct, err := client.Bench(ctx, BenchRequest{Model: "good", Mode: "wide", Workers: 1})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}
	rigged, err := client.Bench(ctx, BenchRequest{Model: "good", Mode: "wide", Workers: 1, UseRig: true})
	if err != nil {
		t.Fatalf("rig bench: %v", err)
	}
	if !reflect.DeepEqual(direct.RewardSeries, rigged.RewardSeries) {
		t.Fatalf("rig path diverges:\ndirect %v\nrigged %v", direct.RewardSeries, rigged.RewardSeries)
	}
}

func TestBenchUnknownMode(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.Bench(context.Background(), BenchRequest{Mode: "spin"}); err == nil {
		t.Fatal("expected unknown mode error")
	}
}

func TestExportLatestRun(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if _, err := client.Export(ctx, ExportRequest{Latest: true}); err == nil {
		t.Fatal("expected export with no runs to fail")
	}
	if _, err := client.Export(ctx, ExportRequest{RunID: "x", Latest: true}); err == nil {
		t.Fatal("expected conflicting export request to fail")
	}
	if _, err := client.Export(ctx, ExportRequest{}); err == nil {
		t.Fatal("expected empty export request to fail")
	}

	summary, err := client.Bench(ctx, BenchRequest{Model: "okayish", Mode: "stress", Workers: 2})
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	exported, err := client.Export(ctx, ExportRequest{Latest: true})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if exported.RunID != summary.RunID {
		t.Fatalf("exported wrong run: got=%s want=%s", exported.RunID, summary.RunID)
	}
	for _, file := range []string{"config.json", "summary.json", "episode_diagnostics.json", "reward_series.csv"} {
		if _, err := os.Stat(filepath.Join(exported.Directory, file)); err != nil {
			t.Fatalf("exported file %s: %v", file, err)
		}
	}
}

func TestInitSeedsStoredProfiles(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	if err := client.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	ids, err := client.store.ListModelProfiles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{
		"two-wheel-bot-dqn-good",
		"two-wheel-bot-dqn-great",
		"two-wheel-bot-dqn-okayish",
	}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("seeded profiles: got=%v want=%v", ids, want)
	}

	// Init is idempotent.
	if err := client.Init(ctx); err != nil {
		t.Fatalf("reinit: %v", err)
	}
}
