// Package storage talks to the object store that holds product and
// billboard images.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotConfigured = errors.New("object storage is not configured")
	// ErrForeignURL: the URL does not point into this store's bucket.
	ErrForeignURL = errors.New("url does not belong to the storage bucket")
)

// ObjectStore accepts a blob under a path prefix and returns its public URL;
// given that URL it deletes the object.
type ObjectStore interface {
	Upload(ctx context.Context, data []byte, contentType, prefix string) (string, error)
	Delete(ctx context.Context, publicURL string) error
}

var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/avif": ".avif",
}

// HTTPStore is a client for a Supabase-compatible storage REST API.
type HTTPStore struct {
	baseURL    string
	bucket     string
	serviceKey string
	client     *http.Client
}

func NewHTTPStore(baseURL, bucket, serviceKey string) *HTTPStore {
	return &HTTPStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPStore) publicPrefix() string {
	return s.baseURL + "/object/public/" + s.bucket + "/"
}

func (s *HTTPStore) Upload(ctx context.Context, data []byte, contentType, prefix string) (string, error) {
	if s.baseURL == "" {
		return "", ErrNotConfigured
	}

	name := path.Join(strings.Trim(prefix, "/"), uuid.NewString()+extensions[contentType])
	endpoint := s.baseURL + "/object/" + s.bucket + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "false")
	s.authorize(req)

	if err := s.do(req); err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return s.publicPrefix() + name, nil
}

func (s *HTTPStore) Delete(ctx context.Context, publicURL string) error {
	if s.baseURL == "" {
		return ErrNotConfigured
	}

	name, ok := strings.CutPrefix(publicURL, s.publicPrefix())
	if !ok || name == "" {
		return ErrForeignURL
	}

	endpoint := s.baseURL + "/object/" + s.bucket + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	s.authorize(req)

	err = s.do(req)
	var se *StatusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return nil // already gone
	}
	if err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func (s *HTTPStore) authorize(req *http.Request) {
	if s.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.serviceKey)
		req.Header.Set("apikey", s.serviceKey)
	}
}

// StatusError is a non-2xx response from the object store.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storage responded %d: %s", e.Code, e.Body)
}

func (s *HTTPStore) do(req *http.Request) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
