package httpapi

import (
	"net/http"

	"github.com/mailajoket/stats-api/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.matchService.List(ctx, query.Criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, matchToDTO(row, query.Perspective))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ExportMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportMatches")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.matchService.List(ctx, query.Criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "export matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="matches.csv"`)
	if err := usecase.WriteMatchesCSV(w, rows, query.Perspective); err != nil {
		h.logger.ErrorContext(ctx, "write matches csv failed", "error", err)
	}
}
