package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"ledgerd/internal/core"
)

// JSONFileStore persists the whole collection as one JSON array. Writes go
// through a temp file followed by a rename, so a crashed save never leaves a
// half-written canonical file. Single-writer assumption; the mutex only
// serializes goroutines inside this process.
type JSONFileStore struct {
	mu   sync.Mutex
	path string
}

func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &JSONFileStore{path: path}, nil
}

// Load reads the collection. A missing file and corrupt content both yield
// an empty collection; corruption is logged, never surfaced as an error.
func (s *JSONFileStore) Load(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []core.Transaction{}, nil
		}
		slog.WarnContext(ctx, "Transactions file unreadable, starting empty",
			"path", s.path, "error", err)
		return []core.Transaction{}, nil
	}

	var txs []core.Transaction
	if err := json.Unmarshal(raw, &txs); err != nil {
		slog.WarnContext(ctx, "Transactions file malformed, starting empty",
			"path", s.path, "error", err)
		return []core.Transaction{}, nil
	}
	return txs, nil
}

// Save atomically replaces the canonical file. The temp artifact is removed
// on any failure and the error propagates to the caller.
func (s *JSONFileStore) Save(ctx context.Context, txs []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(txs, "", "    ")
	if err != nil {
		return &core.StorageError{Op: "save", Err: err}
	}

	tmp := s.path + ".tmp"
	if err := writeAndSync(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return &core.StorageError{Op: "save", Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &core.StorageError{Op: "save", Err: err}
	}

	slog.DebugContext(ctx, "Transactions saved", "path", s.path, "count", len(txs))
	return nil
}

func (s *JSONFileStore) Close() error { return nil }

func writeAndSync(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
