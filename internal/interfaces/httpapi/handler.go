package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/platform/logging"
	"github.com/riskibarqy/buzzerbeater-analyzer/internal/usecase"
)

// maxReportBodyBytes bounds imported and ad-hoc report documents.
const maxReportBodyBytes = 8 << 20

type Handler struct {
	reportService       *usecase.ReportService
	buzzerbeaterService *usecase.BuzzerbeaterService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	reportService *usecase.ReportService,
	buzzerbeaterService *usecase.BuzzerbeaterService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		reportService:       reportService,
		buzzerbeaterService: buzzerbeaterService,
		logger:              logger,
		validator:           validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any, except ...string) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	var err error
	if len(except) > 0 {
		err = h.validator.StructExceptCtx(ctx, payload, except...)
	} else {
		err = h.validator.StructCtx(ctx, payload)
	}
	if err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func matchIDFromPath(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("matchID"))
	matchID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || matchID <= 0 {
		return 0, fmt.Errorf("%w: matchID must be a positive integer, got %q", usecase.ErrInvalidInput, raw)
	}

	return matchID, nil
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, strict bool) error {
	body := http.MaxBytesReader(w, r.Body, maxReportBodyBytes)
	decoder := sonic.ConfigDefault.NewDecoder(body)
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
