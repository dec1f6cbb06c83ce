package httpapi

import (
	"net/http"
	"time"
)

type unlockRequest struct {
	PIN string `json:"pin" validate:"required"`
}

type sessionDTO struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Unlock exchanges the shared admin PIN for a bearer token.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Unlock")
	defer span.End()

	var req unlockRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	principal, err := h.authService.Unlock(ctx, req.PIN)
	if err != nil {
		h.logger.WarnContext(ctx, "unlock failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := sessionDTO{Token: principal.Token}
	if !principal.ExpiresAt.IsZero() {
		dto.ExpiresAt = principal.ExpiresAt.UTC().Format(time.RFC3339)
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

// Logout revokes the calling session's token.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	h.authService.Logout(ctx, principal.Token)

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "logged out"})
}
