package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFantasyRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("POST /players", handler.CreatePlayer)

	mux.HandleFunc("POST /draft", handler.CreateDraft)
	mux.HandleFunc("GET /draft/{user_id}/{week}", handler.GetDraft)

	mux.HandleFunc("POST /transfer", handler.CreateTransfer)
	mux.HandleFunc("GET /transfers", handler.ListTransfers)

	mux.HandleFunc("GET /leaderboard", handler.GetLeaderboard)

	mux.HandleFunc("POST /leagues", handler.CreateLeague)
	mux.HandleFunc("POST /leagues/join", handler.JoinLeague)
	mux.HandleFunc("GET /leagues/{league_id}", handler.GetLeague)

	mux.HandleFunc("GET /weeks", handler.ListWeeks)
	mux.HandleFunc("POST /weeks", handler.CreateWeek)

	mux.HandleFunc("GET /notifications", handler.ListNotifications)
	mux.HandleFunc("POST /notifications", handler.CreateNotification)
}

func registerAccountRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /auth/register", handler.Register)
	mux.HandleFunc("POST /auth/login", handler.Login)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /internal/points", handler.ApplyPoints)
}
