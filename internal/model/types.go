package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Architecture fixes the tensor shapes of a policy network. All shipped
// profiles share the same 2-64-3 layout.
type Architecture struct {
	Input  int `json:"input"`
	Hidden int `json:"hidden"`
	Output int `json:"output"`
}

// ModelProfile is the storable form of one trained parameter set. Tensors are
// flat, row-major slices: input→hidden by input index, hidden→output by
// hidden index.
type ModelProfile struct {
	VersionedRecord
	ID                  string       `json:"id"`
	Label               string       `json:"label"`
	Grade               string       `json:"grade"`
	TrainedAt           string       `json:"trained_at"`
	Arch                Architecture `json:"arch"`
	WeightsInputHidden  []float32    `json:"weights_input_hidden"`
	BiasHidden          []float32    `json:"bias_hidden"`
	WeightsHiddenOutput []float32    `json:"weights_hidden_output"`
	BiasOutput          []float32    `json:"bias_output"`
}

// EpisodeDiagnostics summarizes one bench episode.
type EpisodeDiagnostics struct {
	Episode       int     `json:"episode"`
	StartAngle    float64 `json:"start_angle"`
	StepsSurvived int     `json:"steps_survived"`
	AvgReward     float64 `json:"avg_reward"`
	Fell          bool    `json:"fell"`
	LeftSteps     int     `json:"left_steps"`
	BrakeSteps    int     `json:"brake_steps"`
	RightSteps    int     `json:"right_steps"`
}
