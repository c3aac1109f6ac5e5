package backend

import (
	"fmt"
	"log/slog"

	"ledgerd/internal/storage"
)

// Factory creates stores based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the configured Store implementation.
func (f *Factory) CreateStore(cfg Config) (Store, error) {
	switch cfg.Type {
	case JSONBackend:
		store, err := storage.NewJSONFileStore(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("initialize json store: %w", err)
		}
		f.logger.Info("Initialized json backend", "data_file", cfg.DataFile)
		return store, nil
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return store, nil
	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}
}
