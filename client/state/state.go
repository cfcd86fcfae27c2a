package state

import "sync"

// Status is the outcome of a single call.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// State is the loading/error pair observed by UI layers.
type State struct {
	mu      sync.RWMutex
	loading bool
	err     string
}

// Loading reports whether a call is in flight.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage returns the last failure message or an empty string.
func (s *State) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *State) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *State) fail(message string) {
	s.mu.Lock()
	s.err = message
	s.mu.Unlock()
}

func (s *State) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// Result is the explicit outcome of one call.
type Result[T any] struct {
	Status       Status
	Data         T
	ErrorMessage string
	Err          error
}

// Unpack returns the data and error of the result.
func (r Result[T]) Unpack() (T, error) {
	return r.Data, r.Err
}

// Track runs fn with the State's loading flag raised and the error cleared.
// A failure sets the State error to the error message. Loading is cleared
// when fn returns, panics included.
func Track[T any](s *State, fn func() (T, error)) (result Result[T]) {
	s.begin()
	defer s.end()
	result.Status = StatusPending
	data, err := fn()
	if err != nil {
		result.Status = StatusFailure
		result.Err = err
		result.ErrorMessage = err.Error()
		s.fail(result.ErrorMessage)
		return result
	}
	result.Status = StatusSuccess
	result.Data = data
	return result
}
