package storage

import (
	"context"
	"sort"
	"sync"

	"balancebot/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	profiles    map[string]model.ModelProfile
	history     map[string][]float64
	diagnostics map[string][]model.EpisodeDiagnostics
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.profiles = make(map[string]model.ModelProfile)
	s.history = make(map[string][]float64)
	s.diagnostics = make(map[string][]model.EpisodeDiagnostics)
	return nil
}

func (s *MemoryStore) SaveModelProfile(_ context.Context, profile model.ModelProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.ID] = copyModelProfile(profile)
	return nil
}

func (s *MemoryStore) GetModelProfile(_ context.Context, id string) (model.ModelProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return model.ModelProfile{}, false, nil
	}
	return copyModelProfile(profile), true, nil
}

func (s *MemoryStore) ListModelProfiles(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *MemoryStore) SaveRewardHistory(_ context.Context, runID string, history []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history[runID] = append([]float64(nil), history...)
	return nil
}

func (s *MemoryStore) GetRewardHistory(_ context.Context, runID string) ([]float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.history[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]float64(nil), history...), true, nil
}

func (s *MemoryStore) SaveEpisodeDiagnostics(_ context.Context, runID string, diagnostics []model.EpisodeDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.EpisodeDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	s.diagnostics[runID] = copied
	return nil
}

func (s *MemoryStore) GetEpisodeDiagnostics(_ context.Context, runID string) ([]model.EpisodeDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	diagnostics, ok := s.diagnostics[runID]
	if !ok {
		return nil, false, nil
	}
	copied := make([]model.EpisodeDiagnostics, len(diagnostics))
	copy(copied, diagnostics)
	return copied, true, nil
}

func copyModelProfile(p model.ModelProfile) model.ModelProfile {
	out := p
	out.WeightsInputHidden = append([]float32(nil), p.WeightsInputHidden...)
	out.BiasHidden = append([]float32(nil), p.BiasHidden...)
	out.WeightsHiddenOutput = append([]float32(nil), p.WeightsHiddenOutput...)
	out.BiasOutput = append([]float32(nil), p.BiasOutput...)
	return out
}
