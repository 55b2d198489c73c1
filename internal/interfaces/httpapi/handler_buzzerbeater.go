package httpapi

import (
	"net/http"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/playbyplay"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/usecase"
)

func (h *Handler) GetMatchBuzzerbeaters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchBuzzerbeaters")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	analysis, err := h.buzzerbeaterService.FindByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "find buzzerbeaters failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysis)
}

func (h *Handler) ListStoredBuzzerbeaters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStoredBuzzerbeaters")
	defer span.End()

	matchID, err := matchIDFromPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	hits, err := h.buzzerbeaterService.ListStored(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list stored buzzerbeaters failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, storedHitsToDTO(matchID, hits))
}

func (h *Handler) BulkBuzzerbeaters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BulkBuzzerbeaters")
	defer span.End()

	var req bulkBuzzerbeaterRequest
	if err := decodeJSONBody(w, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.buzzerbeaterService.FindByMatches(ctx, usecase.BulkInput{
		MatchIDs:   req.MatchIDs,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "bulk buzzerbeaters failed", "match_count", len(req.MatchIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

// AnalyzeBuzzerbeaters runs the pipeline over a report in the request body; nothing is stored.
func (h *Handler) AnalyzeBuzzerbeaters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeBuzzerbeaters")
	defer span.End()

	var report playbyplay.Report
	if err := decodeJSONBody(w, r, &report, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, report, "MatchID"); err != nil {
		writeError(ctx, w, err)
		return
	}

	analysis, err := h.buzzerbeaterService.AnalyzeReport(ctx, report)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze report failed", "match_id", report.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysis)
}
