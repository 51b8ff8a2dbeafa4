package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/schema", handler.GetSchema)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/selected", handler.GetSelectedTeam)
	mux.HandleFunc("GET /v1/opponents", handler.ListOpponents)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/export", handler.ExportMatches)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
	mux.HandleFunc("GET /v1/trends/points", handler.GetPointsTrend)
	mux.HandleFunc("GET /v1/trends/outcomes", handler.GetOutcomeTrend)
	mux.HandleFunc("GET /v1/opponents/breakdown", handler.GetOpponentBreakdown)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
}

func registerSquadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}/highlights", handler.GetPlayerHighlights)
	mux.HandleFunc("GET /v1/rosters", handler.GetRoster)
	mux.HandleFunc("GET /v1/rosters/trend", handler.GetRosterTrend)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalReloadToken string) {
	mux.Handle("POST /v1/internal/reload", RequireInternalReloadToken(internalReloadToken, http.HandlerFunc(handler.ReloadWorkbook)))
}
