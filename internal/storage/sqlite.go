package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ledgerd/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the collection in a local SQLite database. It honors the
// same whole-collection contract as the JSON file store: Save replaces the
// table contents in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, description, amount, category, type, timestamp FROM transactions`)
	if err != nil {
		return nil, &core.StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		var (
			tx       core.Transaction
			dateStr  string
			stampStr string
		)
		if err := rows.Scan(&tx.ID, &dateStr, &tx.Description, &tx.Amount, &tx.Category, &tx.Type, &stampStr); err != nil {
			return nil, &core.StorageError{Op: "load", Err: err}
		}
		if tx.Date, err = core.ParseDate(dateStr); err != nil {
			return nil, &core.StorageError{Op: "load", Err: fmt.Errorf("row %s: %w", tx.ID, err)}
		}
		if tx.Timestamp, err = time.Parse(time.RFC3339Nano, stampStr); err != nil {
			return nil, &core.StorageError{Op: "load", Err: fmt.Errorf("row %s: %w", tx.ID, err)}
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, &core.StorageError{Op: "load", Err: err}
	}
	return txs, nil
}

func (s *SQLiteStore) Save(ctx context.Context, txs []core.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &core.StorageError{Op: "save", Err: err}
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return &core.StorageError{Op: "save", Err: err}
	}
	stmt, err := dbTx.PrepareContext(ctx,
		`INSERT INTO transactions (id, date, description, amount, category, type, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return &core.StorageError{Op: "save", Err: err}
	}
	defer stmt.Close()

	for _, tx := range txs {
		_, err := stmt.ExecContext(ctx,
			tx.ID, tx.Date.String(), tx.Description, tx.Amount,
			tx.Category, string(tx.Type), tx.Timestamp.Format(time.RFC3339Nano))
		if err != nil {
			return &core.StorageError{Op: "save", Err: fmt.Errorf("insert %s: %w", tx.ID, err)}
		}
	}

	if err := dbTx.Commit(); err != nil {
		return &core.StorageError{Op: "save", Err: err}
	}
	return nil
}
