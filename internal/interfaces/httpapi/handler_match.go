package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/club-tracker/internal/domain/match"
	"github.com/riskibarqy/club-tracker/internal/domain/player"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

type statLineDTO struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

type appliedStatDTO struct {
	Goals   int  `json:"goals"`
	Assists int  `json:"assists"`
	Counted bool `json:"counted"`
}

type matchDTO struct {
	ID               string                    `json:"id"`
	Date             string                    `json:"date"`
	Time             string                    `json:"time,omitempty"`
	Location         string                    `json:"location,omitempty"`
	Rivalry          string                    `json:"rivalry,omitempty"`
	Notes            string                    `json:"notes,omitempty"`
	Status           string                    `json:"status"`
	TeamA            []string                  `json:"teamA"`
	TeamB            []string                  `json:"teamB"`
	TeamC            []string                  `json:"teamC"`
	Stats            map[string]statLineDTO    `json:"stats"`
	MOTM             []string                  `json:"motm"`
	Hattricks        []string                  `json:"hattricks"`
	CleanSheetPlayer string                    `json:"cleanSheetPlayer,omitempty"`
	Applied          map[string]appliedStatDTO `json:"applied"`
}

type matchRosterPlayerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
	Role  string `json:"role"`
}

type matchDetailDTO struct {
	Match   matchDTO               `json:"match"`
	Players []matchRosterPlayerDTO `json:"players"`
}

type playerDeltaDTO struct {
	PlayerID string `json:"playerId"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Matches  int    `json:"matches"`
}

type applyResultDTO struct {
	Match          matchDTO               `json:"match"`
	Deltas         []playerDeltaDTO       `json:"deltas"`
	UpdatedPlayers []matchRosterPlayerDTO `json:"updatedPlayers"`
	SkippedIDs     []string               `json:"skippedIds,omitempty"`
}

type matchCreateRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	Location string `json:"location,omitempty" validate:"max=200"`
	Rivalry  string `json:"rivalry,omitempty" validate:"max=200"`
	Notes    string `json:"notes,omitempty" validate:"max=2000"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=upcoming played"`
}

type statUpdateRequest struct {
	Goals   *int `json:"goals,omitempty" validate:"omitempty,gte=0"`
	Assists *int `json:"assists,omitempty" validate:"omitempty,gte=0"`
}

func matchToDTO(m match.Match) matchDTO {
	stats := make(map[string]statLineDTO, len(m.Stats))
	for id, line := range m.Stats {
		stats[id] = statLineDTO{Goals: line.Goals, Assists: line.Assists}
	}
	applied := make(map[string]appliedStatDTO, len(m.Applied))
	for id, stat := range m.Applied {
		applied[id] = appliedStatDTO{Goals: stat.Goals, Assists: stat.Assists, Counted: stat.Counted}
	}

	return matchDTO{
		ID:               m.ID,
		Date:             m.Date,
		Time:             m.Time,
		Location:         m.Location,
		Rivalry:          m.Rivalry,
		Notes:            m.Notes,
		Status:           string(m.Status),
		TeamA:            emptyIfNil(m.TeamA),
		TeamB:            emptyIfNil(m.TeamB),
		TeamC:            emptyIfNil(m.TeamC),
		Stats:            stats,
		MOTM:             emptyIfNil(m.MOTM),
		Hattricks:        emptyIfNil(m.Hattricks),
		CleanSheetPlayer: m.CleanSheetPlayer,
		Applied:          applied,
	}
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func rosterPlayerToDTO(p player.Player) matchRosterPlayerDTO {
	return matchRosterPlayerDTO{
		ID:    p.ID,
		Name:  p.Name,
		Photo: p.Photo,
		Role:  string(p.Role),
	}
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	status := match.Status(strings.TrimSpace(r.URL.Query().Get("status")))
	matches, err := h.matchService.ListMatches(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	detail, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]matchRosterPlayerDTO, 0, len(detail.Players))
	for _, p := range detail.Players {
		players = append(players, rosterPlayerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailDTO{
		Match:   matchToDTO(detail.Match),
		Players: players,
	})
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	var req matchCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.CreateMatch(ctx, principal, usecase.MatchInput{
		Date:     req.Date,
		Time:     req.Time,
		Location: req.Location,
		Rivalry:  req.Rivalry,
		Notes:    req.Notes,
		Status:   match.Status(req.Status),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(m))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	if err := h.matchService.DeleteMatch(ctx, principal, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) MarkMatchPlayed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkMatchPlayed")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	m, err := h.matchService.MarkPlayed(ctx, principal, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark match played failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) AssignPlayerToTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayerToTeam")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	team := match.Team(strings.ToUpper(strings.TrimSpace(r.PathValue("team"))))
	playerID := r.PathValue("playerID")

	m, err := h.matchService.AssignToTeam(ctx, principal, matchID, playerID, team)
	if err != nil {
		h.logger.WarnContext(ctx, "assign player failed", "match_id", matchID, "player_id", playerID, "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) UnassignPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnassignPlayer")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	playerID := r.PathValue("playerID")
	m, err := h.matchService.Unassign(ctx, principal, matchID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "unassign player failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) SetMatchStat(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchStat")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	playerID := r.PathValue("playerID")
	var req statUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.matchService.SetStat(ctx, principal, matchID, playerID, usecase.StatInput{
		Goals:   req.Goals,
		Assists: req.Assists,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set match stat failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ToggleMatchAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ToggleMatchAward")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	award := match.Award(strings.ToLower(strings.TrimSpace(r.PathValue("award"))))
	playerID := r.PathValue("playerID")

	m, err := h.matchService.ToggleAward(ctx, principal, matchID, award, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle award failed", "match_id", matchID, "award", award, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ClearMatchAward(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearMatchAward")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	award := match.Award(strings.ToLower(strings.TrimSpace(r.PathValue("award"))))
	m, err := h.matchService.ClearAward(ctx, principal, matchID, award)
	if err != nil {
		h.logger.WarnContext(ctx, "clear award failed", "match_id", matchID, "award", award, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) SetMatchCleanSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetMatchCleanSheet")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	playerID := r.PathValue("playerID")
	m, err := h.matchService.SetCleanSheet(ctx, principal, matchID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "set clean sheet failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ClearMatchCleanSheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearMatchCleanSheet")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	m, err := h.matchService.ClearCleanSheet(ctx, principal, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "clear clean sheet failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(m))
}

func (h *Handler) ApplyMatchToTotals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyMatchToTotals")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	matchID := r.PathValue("matchID")
	result, err := h.matchService.ApplyToTotals(ctx, principal, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "apply match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	deltas := make([]playerDeltaDTO, 0, len(result.Deltas))
	for _, delta := range result.Deltas {
		deltas = append(deltas, playerDeltaDTO{
			PlayerID: delta.PlayerID,
			Goals:    delta.Goals,
			Assists:  delta.Assists,
			Matches:  delta.Matches,
		})
	}
	updated := make([]matchRosterPlayerDTO, 0, len(result.UpdatedPlayers))
	for _, p := range result.UpdatedPlayers {
		updated = append(updated, rosterPlayerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, applyResultDTO{
		Match:          matchToDTO(result.Match),
		Deltas:         deltas,
		UpdatedPlayers: updated,
		SkippedIDs:     result.SkippedIDs,
	})
}
