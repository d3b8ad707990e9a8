package testutil

import (
	"context"
	"fmt"
	"sync"
)

// ObjectStore is an in-memory storage.ObjectStore that records calls.
type ObjectStore struct {
	mu       sync.Mutex
	Uploaded []string
	Deleted  []string
	// DeleteErr, when set, is returned by every Delete.
	DeleteErr error
}

func (s *ObjectStore) Upload(_ context.Context, data []byte, contentType, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	url := fmt.Sprintf("https://cdn.test/object/public/images/%s/%d", prefix, len(s.Uploaded)+1)
	s.Uploaded = append(s.Uploaded, url)
	return url, nil
}

func (s *ObjectStore) Delete(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, url)
	return s.DeleteErr
}

func (s *ObjectStore) DeletedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Deleted...)
}
