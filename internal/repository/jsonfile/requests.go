package jsonfile

import (
	"sync"

	"github.com/Ramilbey/china-agent-bot/internal/domain"
)

// RequestStore implements repository.RequestRepository over an
// append-only JSON array document
type RequestStore struct {
	mu       sync.RWMutex
	path     string
	requests []domain.ServiceRequest
}

// NewRequestStore loads the request log at path
func NewRequestStore(path string) (*RequestStore, error) {
	s := &RequestStore{path: path}
	if err := readDocument(path, &s.requests); err != nil {
		return nil, err
	}
	return s, nil
}

// Append adds one request record and persists the log
func (s *RequestStore) Append(req domain.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if err := writeDocument(s.path, s.requests); err != nil {
		// Keep the in-memory record; the next successful append
		// persists it together with this one.
		return err
	}
	return nil
}

// All returns a copy of every logged request in submission order
func (s *RequestStore) All() []domain.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ServiceRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
