package httpapi

import "net/http"

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.metricsService.Overview(ctx, query.Criteria, query.Last)
	if err != nil {
		h.logger.ErrorContext(ctx, "get summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overview)
}

func (h *Handler) GetPointsTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPointsTrend")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trend, err := h.metricsService.PointsTrend(ctx, query.Criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "get points trend failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trend)
}

func (h *Handler) GetOutcomeTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOutcomeTrend")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trend, err := h.metricsService.OutcomeTrend(ctx, query.Criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "get outcome trend failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, trend)
}

func (h *Handler) GetOpponentBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOpponentBreakdown")
	defer span.End()

	query, err := parseMatchQuery(r, h.validator)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	breakdown, err := h.metricsService.OpponentBreakdown(ctx, query.Criteria)
	if err != nil {
		h.logger.ErrorContext(ctx, "get opponent breakdown failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, breakdown)
}
