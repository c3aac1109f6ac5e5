package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"ledgerd/internal/charts"
	"ledgerd/internal/core"
)

const defaultTimeframeDays = 30

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	summary, err := core.ComputeSummary(txs, s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, summary)
}

// parseTimeframe reads the window size in days, falling back to the default
// on absent or malformed values.
func parseTimeframe(r *http.Request) int {
	v := strings.TrimSpace(r.URL.Query().Get("timeframe"))
	if v == "" {
		return defaultTimeframeDays
	}
	days, err := strconv.Atoi(v)
	if err != nil || days < 1 {
		slog.WarnContext(r.Context(), "Invalid timeframe, using default",
			"timeframe", v, "default", defaultTimeframeDays)
		return defaultTimeframeDays
	}
	return days
}

func trendSelector(r *http.Request) core.TrendSelector {
	switch r.URL.Query().Get("type") {
	case "credit":
		return core.TrendCredit
	case "debit":
		return core.TrendDebit
	default:
		return core.TrendHybrid
	}
}

func categorySelector(r *http.Request) core.CategorySelector {
	switch r.URL.Query().Get("type") {
	case "credit":
		return core.CategoryCredit
	case "debit":
		return core.CategoryDebit
	default:
		return core.CategoryAll
	}
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	data, err := core.ComputeTrend(txs, parseTimeframe(r), trendSelector(r), s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, data)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	data, err := core.ComputeCategoryBreakdown(txs, parseTimeframe(r), categorySelector(r), s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, data)
}

func (s *Server) handleTrendPNG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	data, err := core.ComputeTrend(txs, parseTimeframe(r), trendSelector(r), s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.RenderTrendPNG(w, data); err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			w.Header().Del("Content-Type")
			writeJSON(ctx, w, http.StatusNotFound, errorBody{Error: err.Error()})
			return
		}
		slog.ErrorContext(ctx, "Trend chart render failed", "error", err)
	}
}

func (s *Server) handleCategoriesPNG(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.store.Load(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	data, err := core.ComputeCategoryBreakdown(txs, parseTimeframe(r), categorySelector(r), s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := charts.RenderCategoryPNG(w, data); err != nil {
		if errors.Is(err, charts.ErrNotEnoughData) {
			w.Header().Del("Content-Type")
			writeJSON(ctx, w, http.StatusNotFound, errorBody{Error: err.Error()})
			return
		}
		slog.ErrorContext(ctx, "Category chart render failed", "error", err)
	}
}
