package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"ledgerd/internal/core"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.appMetrics.uptime).String(),
	})
}

// handleReady performs readiness check with a store probe
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	checks := map[string]string{}
	status := "ready"
	httpStatus := http.StatusOK

	if _, err := s.store.Load(ctx); err != nil {
		checks["store"] = fmt.Sprintf("failed: %v", err)
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["store"] = "ok"
	}

	writeJSON(ctx, w, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// entryFilters are the optional query filters on the entries list.
type entryFilters struct {
	txType    core.TxType
	category  string
	startDate core.Date
	endDate   core.Date
	minAmount float64
	maxAmount float64
	search    string
}

func parseEntryFilters(r *http.Request) (entryFilters, error) {
	q := r.URL.Query()
	f := entryFilters{
		category: strings.TrimSpace(q.Get("category")),
		search:   strings.ToLower(strings.TrimSpace(q.Get("search"))),
	}

	if v := strings.TrimSpace(q.Get("type")); v != "" {
		t := core.TxType(v)
		if !t.Valid() {
			return f, &core.ValidationError{Field: "type", Message: "must be credit or debit"}
		}
		f.txType = t
	}
	if v := strings.TrimSpace(q.Get("start_date")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, &core.ValidationError{Field: "start_date", Message: "must be formatted " + core.DateLayout}
		}
		f.startDate = d
	}
	if v := strings.TrimSpace(q.Get("end_date")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return f, &core.ValidationError{Field: "end_date", Message: "must be formatted " + core.DateLayout}
		}
		f.endDate = d
	}
	if v := strings.TrimSpace(q.Get("min_amount")); v != "" {
		a, err := core.ParseAmount(v)
		if err != nil {
			return f, &core.ValidationError{Field: "min_amount", Message: "must be a positive number"}
		}
		f.minAmount = a
	}
	if v := strings.TrimSpace(q.Get("max_amount")); v != "" {
		a, err := core.ParseAmount(v)
		if err != nil {
			return f, &core.ValidationError{Field: "max_amount", Message: "must be a positive number"}
		}
		f.maxAmount = a
	}
	return f, nil
}

func (f entryFilters) match(tx core.Transaction) bool {
	if f.txType != "" && tx.Type != f.txType {
		return false
	}
	if f.category != "" && tx.Category != f.category {
		return false
	}
	if !f.startDate.IsZero() && tx.Date.Before(f.startDate.Time) {
		return false
	}
	if !f.endDate.IsZero() && tx.Date.After(f.endDate.Time) {
		return false
	}
	if f.minAmount > 0 && tx.Amount < f.minAmount {
		return false
	}
	if f.maxAmount > 0 && tx.Amount > f.maxAmount {
		return false
	}
	if f.search != "" && !strings.Contains(strings.ToLower(tx.Description), f.search) {
		return false
	}
	return true
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filters, err := parseEntryFilters(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filtered := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filters.match(tx) {
			filtered = append(filtered, tx)
		}
	}

	// Most recent first; creation instant breaks same-day ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date.Time) {
			return filtered[i].Date.After(filtered[j].Date.Time)
		}
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})

	writeJSON(ctx, w, http.StatusOK, filtered)
}

func (s *Server) handleCreateCredit(w http.ResponseWriter, r *http.Request) {
	s.createTransaction(w, r, core.Credit)
}

func (s *Server) handleCreateDebit(w http.ResponseWriter, r *http.Request) {
	s.createTransaction(w, r, core.Debit)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request, txType core.TxType) {
	ctx := r.Context()

	var in core.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(ctx, w, &core.ValidationError{Field: "body", Message: "invalid JSON payload"})
		return
	}
	if err := core.ValidateInput(in, txType); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, _ := core.ParseDate(in.Date)
	tx := core.Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: in.Description,
		Amount:      *in.Amount,
		Category:    in.Category,
		Type:        txType,
		Timestamp:   s.now().UTC(),
	}

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	txs = append(txs, tx)
	if err := s.store.Save(ctx, txs); err != nil {
		writeError(ctx, w, err)
		return
	}

	s.countTransaction()
	slog.InfoContext(ctx, "Transaction created",
		"id", tx.ID,
		"type", tx.Type,
		"category", tx.Category,
		"amount", tx.Amount)

	writeJSON(ctx, w, http.StatusCreated, tx)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var in core.TransactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(ctx, w, &core.ValidationError{Field: "body", Message: "invalid JSON payload"})
		return
	}

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	idx := -1
	for i := range txs {
		if txs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		writeError(ctx, w, &core.NotFoundError{ID: id})
		return
	}

	// Type is immutable; the category must fit the original type.
	if err := core.ValidateInput(in, txs[idx].Type); err != nil {
		writeError(ctx, w, err)
		return
	}

	date, _ := core.ParseDate(in.Date)
	txs[idx].Date = date
	txs[idx].Description = in.Description
	txs[idx].Amount = *in.Amount
	txs[idx].Category = in.Category
	txs[idx].Timestamp = s.now().UTC()

	if err := s.store.Save(ctx, txs); err != nil {
		writeError(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id)
	writeJSON(ctx, w, http.StatusOK, txs[idx])
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	remaining := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.ID != id {
			remaining = append(remaining, tx)
		}
	}
	if len(remaining) == len(txs) {
		writeError(ctx, w, &core.NotFoundError{ID: id})
		return
	}

	if err := s.store.Save(ctx, remaining); err != nil {
		writeError(ctx, w, err)
		return
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	writeJSON(ctx, w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
