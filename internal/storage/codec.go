package storage

import (
	"encoding/json"
	"errors"

	"balancebot/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeModelProfile(p model.ModelProfile) ([]byte, error) {
	return json.Marshal(p)
}

func DecodeModelProfile(data []byte) (model.ModelProfile, error) {
	var profile model.ModelProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.ModelProfile{}, err
	}
	if err := checkVersion(profile.VersionedRecord); err != nil {
		return model.ModelProfile{}, err
	}
	return profile, nil
}

func EncodeRewardHistory(history []float64) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeRewardHistory(data []byte) ([]float64, error) {
	var history []float64
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeEpisodeDiagnostics(diagnostics []model.EpisodeDiagnostics) ([]byte, error) {
	return json.Marshal(diagnostics)
}

func DecodeEpisodeDiagnostics(data []byte) ([]model.EpisodeDiagnostics, error) {
	var diagnostics []model.EpisodeDiagnostics
	if err := json.Unmarshal(data, &diagnostics); err != nil {
		return nil, err
	}
	return diagnostics, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
