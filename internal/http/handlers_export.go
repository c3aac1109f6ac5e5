package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"ledgerd/internal/core"
	"ledgerd/internal/export"
)

// loadHistory returns the collection sorted most recent first, the order the
// export formatters present it in.
func (s *Server) loadHistory(r *http.Request) ([]core.Transaction, error) {
	txs, err := s.store.Load(r.Context())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date.Time) {
			return txs[i].Date.After(txs[j].Date.Time)
		}
		return txs[i].Timestamp.After(txs[j].Timestamp)
	})
	return txs, nil
}

func attachmentHeaders(w http.ResponseWriter, contentType, filename string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.loadHistory(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	// Buffer the document so a render failure can still return a 500.
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, txs); err != nil {
		writeError(ctx, w, err)
		return
	}

	attachmentHeaders(w, "text/csv", export.Filename("csv", s.now()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "CSV export write failed", "error", err)
	}
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.loadHistory(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	summary, err := core.ComputeSummary(txs, s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	doc, err := export.BuildPDF(txs, &summary, s.now())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	attachmentHeaders(w, "application/pdf", export.Filename("pdf", s.now()))
	if _, err := w.Write(doc); err != nil {
		slog.ErrorContext(ctx, "PDF export write failed", "error", err)
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	txs, err := s.loadHistory(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	f, err := export.BuildXLSX(txs)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	defer f.Close()

	attachmentHeaders(w,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.Filename("xlsx", s.now()))
	if err := f.Write(w); err != nil {
		slog.ErrorContext(ctx, "XLSX export write failed", "error", err)
	}
}
