package httpapi

import "net/http"

func (h *Handler) GetRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRoster")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.rosterService.View(ctx, query.Criteria.SeasonIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "get roster failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, view)
}

func (h *Handler) GetRosterTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterTrend")
	defer span.End()

	trend, err := h.rosterService.SizeTrend(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get roster trend failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trend)
}
