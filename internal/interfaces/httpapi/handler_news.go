package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/club-tracker/internal/domain/news"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

type newsDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Details   string `json:"details,omitempty"`
	Rivalry   string `json:"rivalry,omitempty"`
	Image     string `json:"image,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type newsUpsertRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Details string `json:"details,omitempty" validate:"max=5000"`
	Rivalry string `json:"rivalry,omitempty" validate:"max=200"`
	Image   string `json:"image,omitempty" validate:"max=500"`
}

func newsToDTO(item news.Item) newsDTO {
	return newsDTO{
		ID:        item.ID,
		Title:     item.Title,
		Details:   item.Details,
		Rivalry:   item.Rivalry,
		Image:     item.Image,
		CreatedAt: item.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNews")
	defer span.End()

	items, err := h.newsService.ListNews(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]newsDTO, 0, len(items))
	for _, item := range items {
		out = append(out, newsToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNews")
	defer span.End()

	newsID := r.PathValue("newsID")
	item, err := h.newsService.GetNews(ctx, newsID)
	if err != nil {
		h.logger.WarnContext(ctx, "get news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateNews")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	var req newsUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.CreateNews(ctx, principal, usecase.NewsInput{
		Title:   req.Title,
		Details: req.Details,
		Rivalry: req.Rivalry,
		Image:   req.Image,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create news failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, newsToDTO(item))
}

func (h *Handler) UpdateNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateNews")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	newsID := r.PathValue("newsID")
	var req newsUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.newsService.UpdateNews(ctx, principal, newsID, usecase.NewsInput{
		Title:   req.Title,
		Details: req.Details,
		Rivalry: req.Rivalry,
		Image:   req.Image,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, newsToDTO(item))
}

func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteNews")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	newsID := r.PathValue("newsID")
	if err := h.newsService.DeleteNews(ctx, principal, newsID); err != nil {
		h.logger.WarnContext(ctx, "delete news failed", "news_id", newsID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
