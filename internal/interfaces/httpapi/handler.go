package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/club-tracker/internal/domain/session"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

type Handler struct {
	authService   *usecase.AuthService
	playerService *usecase.PlayerService
	matchService  *usecase.MatchService
	newsService   *usecase.NewsService
	auditService  *usecase.AuditService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	playerService *usecase.PlayerService,
	matchService *usecase.MatchService,
	newsService *usecase.NewsService,
	auditService *usecase.AuditService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:   authService,
		playerService: playerService,
		matchService:  matchService,
		newsService:   newsService,
		auditService:  auditService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeRequest parses a JSON body into req and runs struct validation.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, req any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, req)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// requestPrincipal pulls the admin principal stored by RequireAdmin.
func requestPrincipal(ctx context.Context, w http.ResponseWriter) (session.Principal, bool) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return session.Principal{}, false
	}

	return principal, true
}
