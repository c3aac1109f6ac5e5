package backend

import (
	"context"

	"ledgerd/internal/core"
)

// Store is the persistence port. It owns the transaction collection; every
// request obtains a fresh snapshot through Load and writes back the whole
// collection through Save.
type Store interface {
	Load(ctx context.Context) ([]core.Transaction, error)
	Save(ctx context.Context, txs []core.Transaction) error
	Close() error
}

// BackendType selects the Store implementation.
type BackendType string

const (
	JSONBackend   BackendType = "json"
	SQLiteBackend BackendType = "sqlite"
)

func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is known.
func (bt BackendType) IsValid() bool {
	switch bt {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds what the factory needs to build a Store.
type Config struct {
	Type BackendType

	// JSON backend
	DataFile string

	// SQLite backend
	SQLiteDBPath string
}
