package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"ledgerd/internal/core"
)

func sampleTransactions() []core.Transaction {
	stamp := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	return []core.Transaction{
		{
			ID:          "a1",
			Date:        core.NewDate(2024, 5, 1),
			Description: "salary",
			Amount:      1500,
			Category:    "Salary",
			Type:        core.Credit,
			Timestamp:   stamp,
		},
		{
			ID:          "b2",
			Date:        core.NewDate(2024, 5, 2),
			Description: "metro fare",
			Amount:      2.5,
			Category:    "Transport",
			Type:        core.Debit,
			Timestamp:   stamp.Add(time.Hour),
		},
	}
}

func TestJSONFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONFileStore(filepath.Join(dir, "transactions.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	want := sampleTransactions()
	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	// Order-independent comparison
	sort.Slice(got, func(i, j int) bool { return got[i].ID < got[j].ID })
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Amount != want[i].Amount ||
			got[i].Category != want[i].Category || got[i].Type != want[i].Type ||
			!got[i].Date.Equal(want[i].Date.Time) || !got[i].Timestamp.Equal(want[i].Timestamp) {
			t.Fatalf("record %d mismatch: %+v != %+v", i, got[i], want[i])
		}
	}
}

func TestJSONFileStoreMissingFile(t *testing.T) {
	store, err := NewJSONFileStore(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
}

func TestJSONFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := NewJSONFileStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt file must not surface an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
}

func TestJSONFileStoreSaveFailureCleansTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "transactions.json")
	// A directory at the canonical path makes the final rename fail.
	if err := os.Mkdir(target, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	store, err := NewJSONFileStore(target)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	err = store.Save(context.Background(), sampleTransactions())
	if err == nil {
		t.Fatalf("expected save error")
	}
	var serr *core.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if _, statErr := os.Stat(target + ".tmp"); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("temp artifact left behind")
	}
}
