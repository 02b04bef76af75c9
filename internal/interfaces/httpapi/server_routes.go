package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/drivers", handler.ListDrivers)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/races", handler.ListRaces)
	mux.HandleFunc("GET /v1/races/{raceID}", handler.GetRace)
	mux.HandleFunc("GET /v1/races/{raceID}/sessions/{session}/result", handler.GetSessionResult)
	mux.HandleFunc("GET /v1/races/{raceID}/sessions/{session}/window", handler.GetRoundWindow)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/bonus/questions", handler.ListBonusQuestions)
	mux.HandleFunc("GET /v1/settings", handler.GetSettings)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler, resolver UserResolver) {
	mux.Handle("PUT /v1/races/{raceID}/sessions/{session}/bet", RequireUser(resolver, http.HandlerFunc(handler.SubmitBet)))
	mux.Handle("GET /v1/races/{raceID}/sessions/{session}/bet", RequireUser(resolver, http.HandlerFunc(handler.GetMyBet)))
	mux.Handle("POST /v1/bonus/questions/{questionID}/answer", RequireUser(resolver, http.HandlerFunc(handler.SubmitBonusAnswer)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, resolver UserResolver) {
	mux.Handle("POST /v1/admin/results/preview", RequireGameAdmin(resolver, http.HandlerFunc(handler.PreviewResultTable)))
	mux.Handle("PUT /v1/admin/races/{raceID}/sessions/{session}/result", RequireGameAdmin(resolver, http.HandlerFunc(handler.SaveSessionResult)))
	mux.Handle("DELETE /v1/admin/races/{raceID}/sessions/{session}/result", RequireGameAdmin(resolver, http.HandlerFunc(handler.DeleteSessionResult)))
	mux.Handle("PUT /v1/admin/races/{raceID}/sessions/{session}/status", RequireGameAdmin(resolver, http.HandlerFunc(handler.SetRoundStatus)))
	mux.Handle("DELETE /v1/admin/races/{raceID}/sessions/{session}/status", RequireGameAdmin(resolver, http.HandlerFunc(handler.ClearRoundStatus)))
	mux.Handle("POST /v1/admin/standings/recompute", RequireGameAdmin(resolver, http.HandlerFunc(handler.RecomputeStandings)))
	mux.Handle("POST /v1/admin/bonus/questions", RequireGameAdmin(resolver, http.HandlerFunc(handler.CreateBonusQuestion)))
	mux.Handle("PUT /v1/admin/bonus/questions/{questionID}", RequireGameAdmin(resolver, http.HandlerFunc(handler.UpdateBonusQuestion)))
	mux.Handle("DELETE /v1/admin/bonus/questions/{questionID}", RequireGameAdmin(resolver, http.HandlerFunc(handler.DeleteBonusQuestion)))
	mux.Handle("PUT /v1/admin/bonus/questions/{questionID}/grade", RequireGameAdmin(resolver, http.HandlerFunc(handler.GradeBonusQuestion)))
	mux.Handle("PUT /v1/admin/settings", RequireGameAdmin(resolver, http.HandlerFunc(handler.UpdateSettings)))
}
