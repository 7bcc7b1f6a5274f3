package params

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"balancebot/internal/modelid"
	"balancebot/internal/policy"
)

const (
	SupportedSchemaVersion = 1
	SupportedCodecVersion  = 1
)

var (
	ErrProfileExists   = errors.New("model profile already registered")
	ErrProfileNotFound = errors.New("model profile not found")
)

// ProfileSpec describes one trained parameter set. Parameters are shared,
// never copied: they are immutable after registration.
type ProfileSpec struct {
	ID         string
	Label      string
	Grade      string
	TrainedAt  string
	Parameters *policy.Parameters
}

var profileRegistry = struct {
	mu sync.RWMutex
	m  map[string]ProfileSpec
}{
	m: make(map[string]ProfileSpec),
}

func Register(spec ProfileSpec) error {
	if spec.ID == "" {
		return errors.New("profile id is required")
	}
	if spec.Parameters == nil {
		return errors.New("profile parameters are required")
	}

	profileRegistry.mu.Lock()
	defer profileRegistry.mu.Unlock()

	if _, exists := profileRegistry.m[spec.ID]; exists {
		return fmt.Errorf("%w: %s", ErrProfileExists, spec.ID)
	}
	profileRegistry.m[spec.ID] = spec
	return nil
}

// Resolve looks a profile up by canonical ID or any recognized alias.
func Resolve(name string) (ProfileSpec, error) {
	id := modelid.Normalize(name)
	if id == "" {
		id = DefaultProfileID
	}

	profileRegistry.mu.RLock()
	spec, ok := profileRegistry.m[id]
	profileRegistry.mu.RUnlock()
	if !ok {
		return ProfileSpec{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	return spec, nil
}

func Names() []string {
	profileRegistry.mu.RLock()
	defer profileRegistry.mu.RUnlock()

	names := make([]string, 0, len(profileRegistry.m))
	for id := range profileRegistry.m {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, spec := range []ProfileSpec{
		{
			ID:         "two-wheel-bot-dqn-okayish",
			Label:      "two-wheel bot DQN (okayish)",
			Grade:      "okayish",
			TrainedAt:  "2025-08-17T17-26-44",
			Parameters: &okayishParameters,
		},
		{
			ID:         "two-wheel-bot-dqn-good",
			Label:      "two-wheel bot DQN (good)",
			Grade:      "good",
			TrainedAt:  "2025-08-17T19-28-58",
			Parameters: &goodParameters,
		},
		{
			ID:         "two-wheel-bot-dqn-great",
			Label:      "two-wheel bot DQN (great)",
			Grade:      "great",
			TrainedAt:  "2025-08-18T22-59-12",
			Parameters: &greatParameters,
		},
	} {
		if err := Register(spec); err != nil {
			panic(err)
		}
	}
}

// DefaultProfileID is the best shipped parameter set.
const DefaultProfileID = "two-wheel-bot-dqn-great"
