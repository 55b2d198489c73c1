package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/usecase"
)

// PutMatchReport stores a report document under the match id from the path.
// A body match_id of 0 takes the path value; any other mismatch is rejected.
func (h *Handler) PutMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutMatchReport")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var report playbyplay.Report
	if err := decodeJSONBody(w, r, &report, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if report.MatchID == 0 {
		report.MatchID = matchID
	}
	if report.MatchID != matchID {
		writeError(ctx, w, fmt.Errorf("%w: body match_id=%d does not match path matchID=%d", usecase.ErrInvalidInput, report.MatchID, matchID))
		return
	}

	if err := h.reportService.Import(ctx, report); err != nil {
		h.logger.WarnContext(ctx, "import match report failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportImportToDTO(report))
}

func (h *Handler) GetMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchReport")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match report failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
