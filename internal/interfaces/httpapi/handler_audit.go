package httpapi

import "net/http"

type auditRowDTO struct {
	PlayerID       string `json:"playerId"`
	PlayerName     string `json:"playerName"`
	StoredGoals    int    `json:"storedGoals"`
	StoredAssists  int    `json:"storedAssists"`
	StoredMatches  int    `json:"storedMatches"`
	AppliedGoals   int    `json:"appliedGoals"`
	AppliedAssists int    `json:"appliedAssists"`
	AppliedMatches int    `json:"appliedMatches"`
	DriftGoals     int    `json:"driftGoals"`
	DriftAssists   int    `json:"driftAssists"`
	DriftMatches   int    `json:"driftMatches"`
}

type auditResultDTO struct {
	MatchCount  int           `json:"matchCount"`
	PlayerCount int           `json:"playerCount"`
	WorkerCount int           `json:"workerCount"`
	DriftCount  int           `json:"driftCount"`
	Rows        []auditRowDTO `json:"rows"`
	OrphanedIDs []string      `json:"orphanedIds,omitempty"`
}

// RunAudit recomputes totals from applied snapshots and reports drift. It is
// read-only and safe to call at any time.
func (h *Handler) RunAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAudit")
	defer span.End()

	principal, ok := requestPrincipal(ctx, w)
	if !ok {
		return
	}

	result, err := h.auditService.Run(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "audit failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]auditRowDTO, 0, len(result.Rows))
	for _, row := range result.Rows {
		rows = append(rows, auditRowDTO{
			PlayerID:       row.PlayerID,
			PlayerName:     row.PlayerName,
			StoredGoals:    row.StoredGoals,
			StoredAssists:  row.StoredAssists,
			StoredMatches:  row.StoredMatches,
			AppliedGoals:   row.AppliedGoals,
			AppliedAssists: row.AppliedAssists,
			AppliedMatches: row.AppliedMatches,
			DriftGoals:     row.DriftGoals,
			DriftAssists:   row.DriftAssists,
			DriftMatches:   row.DriftMatches,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, auditResultDTO{
		MatchCount:  result.MatchCount,
		PlayerCount: result.PlayerCount,
		WorkerCount: result.WorkerCount,
		DriftCount:  result.DriftCount,
		Rows:        rows,
		OrphanedIDs: result.OrphanedIDs,
	})
}
