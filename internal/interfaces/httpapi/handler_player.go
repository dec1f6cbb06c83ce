package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/domain/valuation"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

type valuationDTO struct {
	Score         float64 `json:"score"`
	PricePerMatch float64 `json:"pricePerMatch"`
	Tier          string  `json:"tier"`
	Bonus         float64 `json:"bonus"`
	Total         float64 `json:"total"`
}

type playerDTO struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Photo           string       `json:"photo,omitempty"`
	Role            string       `json:"role"`
	Goals           int          `json:"goals"`
	Assists         int          `json:"assists"`
	Matches         int          `json:"matches"`
	MOTMCount       int          `json:"motmCount"`
	HattrickCount   int          `json:"hattrickCount"`
	CleanSheetCount int          `json:"cleanSheetCount"`
	Valuation       valuationDTO `json:"valuation"`
}

type ladderRowDTO struct {
	Threshold     float64 `json:"threshold"`
	PricePerMatch float64 `json:"pricePerMatch"`
	Tier          string  `json:"tier"`
}

type playerUpsertRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Photo           string `json:"photo,omitempty" validate:"max=500"`
	Role            string `json:"role" validate:"required,oneof=GK DEF MID FWD"`
	Goals           int    `json:"goals" validate:"gte=0"`
	Assists         int    `json:"assists" validate:"gte=0"`
	Matches         int    `json:"matches" validate:"gte=0"`
	MOTMCount       int    `json:"motmCount" validate:"gte=0"`
	HattrickCount   int    `json:"hattrickCount" validate:"gte=0"`
	CleanSheetCount int    `json:"cleanSheetCount" validate:"gte=0"`
}

func playerViewToDTO(view usecase.PlayerView) playerDTO {
	return playerDTO{
		ID:              view.ID,
		Name:            view.Name,
		Photo:           view.Photo,
		Role:            string(view.Role),
		Goals:           view.Goals,
		Assists:         view.Assists,
		Matches:         view.Matches,
		MOTMCount:       view.MOTMCount,
		HattrickCount:   view.HattrickCount,
		CleanSheetCount: view.CleanSheetCount,
		Valuation: valuationDTO{
			Score:         view.Valuation.Score,
			PricePerMatch: view.Valuation.PricePerMatch,
			Tier:          view.Valuation.Tier,
			Bonus:         view.Valuation.Bonus,
			Total:         view.Valuation.Total,
		},
	}
}

func playerInputFromRequest(req playerUpsertRequest) usecase.PlayerInput {
	return usecase.PlayerInput{
		Name:            req.Name,
		Photo:           req.Photo,
		Role:            player.Role(req.Role),
		Goals:           req.Goals,
		Assists:         req.Assists,
		Matches:         req.Matches,
		MOTMCount:       req.MOTMCount,
		HattrickCount:   req.HattrickCount,
		CleanSheetCount: req.CleanSheetCount,
	}
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	views, err := h.playerService.ListPlayers(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(views))
	for _, view := range views {
		items = append(items, playerViewToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	view, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerViewToDTO(view))
}

func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRanking")
	defer span.End()

	views, err := h.playerService.Ranking(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get ranking failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(views))
	for _, view := range views {
		items = append(items, playerViewToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLadder")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, ladderToDTO(h.playerService.Ladder()))
}

func ladderToDTO(ladder valuation.Ladder) []ladderRowDTO {
	rows := make([]ladderRowDTO, 0, len(ladder))
	for _, row := range ladder {
		rows = append(rows, ladderRowDTO{
			Threshold:     row.Threshold,
			PricePerMatch: row.PricePerMatch,
			Tier:          row.Tier,
		})
	}

	return rows
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.playerService.CreatePlayer(ctx, principal, playerInputFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerViewToDTO(view))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	playerID := r.PathValue("playerID")
	var req playerUpsertRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.playerService.UpdatePlayer(ctx, principal, playerID, playerInputFromRequest(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerViewToDTO(view))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, principal, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}
