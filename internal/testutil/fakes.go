package testutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"shoppos/internal/domain/model"
)

// MemStore はメモリ上のArtifactStore。SaveErrで失敗を注入できる
type MemStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	SaveErr error
}

func NewMemStore() *MemStore {
	return &MemStore{files: map[string][]byte{}}
}

func (s *MemStore) Save(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.files[path] = append([]byte(nil), data...)
	return nil
}

func (s *MemStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

func (s *MemStore) Delete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
}

var ErrRenderFailed = errors.New("render failed")

// StubRenderer は注文IDを埋めた小さなPDF風のバイト列を返す
type StubRenderer struct {
	Fail bool
}

func (r StubRenderer) Render(order model.Order, shop model.Shop) ([]byte, error) {
	if r.Fail {
		return nil, ErrRenderFailed
	}
	return []byte("%PDF-1.3 " + shop.Name + " " + order.ID), nil
}
