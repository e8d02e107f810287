// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/vtx/internal/playback"
)

// MockEngine is a test double for [playback.Engine]
type MockEngine struct {
	Playing   bool
	Pos       float64
	Dur       float64
	Rate      float64
	Listeners []func(playback.Event)

	SeekCalls []float64
}

func NewMockEngine(duration float64) *MockEngine {
	return &MockEngine{Dur: duration, Rate: 1.0}
}

func (m *MockEngine) Play() {
	m.Playing = true
	m.emit(playback.EventPlay)
}

func (m *MockEngine) Pause() {
	m.Playing = false
	m.emit(playback.EventPause)
}

func (m *MockEngine) Seek(seconds float64) {
	m.Pos = seconds
	m.SeekCalls = append(m.SeekCalls, seconds)
}

func (m *MockEngine) Position() float64          { return m.Pos }
func (m *MockEngine) Duration() float64          { return m.Dur }
func (m *MockEngine) SetRate(multiplier float64) { m.Rate = multiplier }

func (m *MockEngine) OnEvent(fn func(playback.Event)) {
	m.Listeners = append(m.Listeners, fn)
}

func (m *MockEngine) Load(duration float64) {
	m.Playing = false
	m.Pos = 0
	m.Dur = duration
}

func (m *MockEngine) emit(e playback.Event) {
	for _, fn := range m.Listeners {
		fn(e)
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// TempFile writes content to a file in t.TempDir and returns its path
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := t.TempDir() + "/" + name
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}
