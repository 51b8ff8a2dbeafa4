package httpapi

import "net/http"

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	tables, err := h.standingService.Tables(ctx, query.Criteria.SeasonIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tables)
}
