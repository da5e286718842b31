package testutil

import (
	"fmt"
	"sync"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

// MockConverter returns canned conversions and records every call
type MockConverter struct {
	mu        sync.Mutex
	Responses map[string]string
	Errors    map[string]error
	Calls     []string
}

// NewMockConverter creates a mock with no canned responses
func NewMockConverter() *MockConverter {
	return &MockConverter{
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
	}
}

// Convert implements the converter interface used by the batch package
func (m *MockConverter) Convert(text string, from, to phonetic.Notation) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, text)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if out, ok := m.Responses[text]; ok {
		return out, nil
	}
	return fmt.Sprintf("%s->%s:%s", from, to, text), nil
}

// CallCount returns the number of Convert calls so far
func (m *MockConverter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
