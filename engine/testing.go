package engine

import (
	"time"

	"github.com/lixenwraith/ft-shmup/input"
	"github.com/lixenwraith/ft-shmup/vmath"
)

// testEpoch is the fixed start time of test sessions
var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// NewTestGameContext creates a session with a mock clock and the given random source
// A nil rng selects an empty SequenceRand, which fails every chance roll
func NewTestGameContext(rng vmath.Rand) (*GameContext, *MockTimeProvider) {
	if rng == nil {
		rng = vmath.NewSequenceRand()
	}
	clock := NewMockTimeProvider(testEpoch)
	return NewGameContext(rng, clock), clock
}

// ScriptedKeySource replays a fixed key sequence, then reports no key
type ScriptedKeySource struct {
	keys []input.KeyCode
	next int
}

// NewScriptedKeySource creates a key source replaying keys in order
func NewScriptedKeySource(keys ...input.KeyCode) *ScriptedKeySource {
	return &ScriptedKeySource{keys: keys}
}

// PollKey returns the next scripted key or input.KeyNone
func (s *ScriptedKeySource) PollKey() input.KeyCode {
	if s.next >= len(s.keys) {
		return input.KeyNone
	}
	k := s.keys[s.next]
	s.next++
	return k
}

// MockTimeProvider is a manually advanced clock
type MockTimeProvider struct {
	now time.Time
}

// NewMockTimeProvider creates a mock clock stopped at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
