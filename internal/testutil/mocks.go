package testutil

import (
	"context"
	"sync"

	"codeberg.org/snonux/kirlot/internal/translit"
)

// RecordedConversion is one call seen by MockRecorder
type RecordedConversion struct {
	Direction translit.Direction
	Source    string
	Result    string
}

// MockRecorder mocks the history recorder for testing
type MockRecorder struct {
	Err error

	mu    sync.Mutex
	calls []RecordedConversion
}

// Record mocks recording a conversion
func (m *MockRecorder) Record(_ context.Context, dir translit.Direction, source, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, RecordedConversion{Direction: dir, Source: source, Result: result})
	return m.Err
}

// Calls returns a copy of the recorded calls
func (m *MockRecorder) Calls() []RecordedConversion {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]RecordedConversion(nil), m.calls...)
}

// TestPair is a Cyrillic word with its Latin spelling
type TestPair struct {
	Cyrillic string
	Latin    string
}

// TestDataGenerator generates test data
type TestDataGenerator struct{}

// Pairs returns words that round-trip in both directions
func (g *TestDataGenerator) Pairs() []TestPair {
	return []TestPair{
		{"Ўзбекистон", "O'zbekiston"},
		{"шаҳар", "shahar"},
		{"бекат", "bekat"},
		{"ғишт", "g'isht"},
		{"дунё", "dunyo"},
		{"чой", "choy"},
	}
}

// BatchContent renders the pairs as a batch file of check pairs
func (g *TestDataGenerator) BatchContent() string {
	var content string
	for _, p := range g.Pairs() {
		content += p.Cyrillic + " = " + p.Latin + "\n"
	}
	return content
}
