package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/unlock", handler.Unlock)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/ranking", handler.GetRanking)
	mux.HandleFunc("GET /v1/players/ladder", handler.GetLadder)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)

	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/news/{newsID}", handler.GetNews)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier SessionVerifier) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(verifier, h)
	}

	mux.Handle("POST /v1/auth/logout", admin(handler.Logout))

	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))

	mux.Handle("POST /v1/matches", admin(handler.CreateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", admin(handler.DeleteMatch))
	mux.Handle("POST /v1/matches/{matchID}/played", admin(handler.MarkMatchPlayed))
	mux.Handle("PUT /v1/matches/{matchID}/teams/{team}/players/{playerID}", admin(handler.AssignPlayerToTeam))
	mux.Handle("DELETE /v1/matches/{matchID}/players/{playerID}", admin(handler.UnassignPlayer))
	mux.Handle("PUT /v1/matches/{matchID}/stats/{playerID}", admin(handler.SetMatchStat))
	mux.Handle("PUT /v1/matches/{matchID}/awards/{award}/players/{playerID}", admin(handler.ToggleMatchAward))
	mux.Handle("DELETE /v1/matches/{matchID}/awards/{award}", admin(handler.ClearMatchAward))
	mux.Handle("PUT /v1/matches/{matchID}/clean-sheet/{playerID}", admin(handler.SetMatchCleanSheet))
	mux.Handle("DELETE /v1/matches/{matchID}/clean-sheet", admin(handler.ClearMatchCleanSheet))
	mux.Handle("POST /v1/matches/{matchID}/apply", admin(handler.ApplyMatchToTotals))

	mux.Handle("POST /v1/news", admin(handler.CreateNews))
	mux.Handle("PUT /v1/news/{newsID}", admin(handler.UpdateNews))
	mux.Handle("DELETE /v1/news/{newsID}", admin(handler.DeleteNews))

	mux.Handle("POST /v1/admin/audit", admin(handler.RunAudit))
}
