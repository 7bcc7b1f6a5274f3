package params

import (
	"fmt"

	"balancebot/internal/model"
	"balancebot/internal/policy"
)

// ToModelProfile converts a registered spec to its storable record.
func ToModelProfile(spec ProfileSpec) model.ModelProfile {
	p := spec.Parameters
	return model.ModelProfile{
		VersionedRecord: model.VersionedRecord{
			SchemaVersion: SupportedSchemaVersion,
			CodecVersion:  SupportedCodecVersion,
		},
		ID:        spec.ID,
		Label:     spec.Label,
		Grade:     spec.Grade,
		TrainedAt: spec.TrainedAt,
		Arch: model.Architecture{
			Input:  policy.InputSize,
			Hidden: policy.HiddenSize,
			Output: policy.OutputSize,
		},
		WeightsInputHidden:  p.InputHidden[:],
		BiasHidden:          p.HiddenBias[:],
		WeightsHiddenOutput: p.HiddenOutput[:],
		BiasOutput:          p.OutputBias[:],
	}
}

// FromModelProfile validates tensor shapes and produces fixed-size
// parameters. A shape mismatch is a load-time failure; the forward pass
// itself never re-checks shapes.
func FromModelProfile(profile model.ModelProfile) (*policy.Parameters, error) {
	wantArch := model.Architecture{Input: policy.InputSize, Hidden: policy.HiddenSize, Output: policy.OutputSize}
	if profile.Arch != wantArch {
		return nil, fmt.Errorf("unsupported architecture for profile %s: %+v", profile.ID, profile.Arch)
	}
	if got, want := len(profile.WeightsInputHidden), policy.InputSize*policy.HiddenSize; got != want {
		return nil, fmt.Errorf("profile %s input-hidden weights: got %d values, want %d", profile.ID, got, want)
	}
	if got, want := len(profile.BiasHidden), policy.HiddenSize; got != want {
		return nil, fmt.Errorf("profile %s hidden bias: got %d values, want %d", profile.ID, got, want)
	}
	if got, want := len(profile.WeightsHiddenOutput), policy.HiddenSize*policy.OutputSize; got != want {
		return nil, fmt.Errorf("profile %s hidden-output weights: got %d values, want %d", profile.ID, got, want)
	}
	if got, want := len(profile.BiasOutput), policy.OutputSize; got != want {
		return nil, fmt.Errorf("profile %s output bias: got %d values, want %d", profile.ID, got, want)
	}

	p := &policy.Parameters{}
	copy(p.InputHidden[:], profile.WeightsInputHidden)
	copy(p.HiddenBias[:], profile.BiasHidden)
	copy(p.HiddenOutput[:], profile.WeightsHiddenOutput)
	copy(p.OutputBias[:], profile.BiasOutput)
	return p, nil
}
