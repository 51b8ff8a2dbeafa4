package httpapi

import (
	"fmt"
	"net/http"

	"github.com/mailajoket/stats-api/internal/usecase"
)

func (h *Handler) ReloadWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReloadWorkbook")
	defer span.End()

	if h.reload == nil {
		writeError(ctx, w, fmt.Errorf("%w: reload is not wired", usecase.ErrDependencyUnavailable))
		return
	}

	if err := h.reload(ctx); err != nil {
		h.logger.ErrorContext(ctx, "workbook reload failed", "error", err)
		writeError(ctx, w, fmt.Errorf("%w: reload workbook: %v", usecase.ErrDependencyUnavailable, err))
		return
	}

	h.logger.InfoContext(ctx, "workbook reloaded")
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reloaded"})
}
