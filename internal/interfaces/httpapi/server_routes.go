package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/participants", handler.ListTeamParticipants)
	mux.HandleFunc("POST /v1/teams/{teamID}/participants", handler.AddTeamParticipant)

	mux.HandleFunc("GET /v1/participants", handler.ListParticipants)
	mux.HandleFunc("POST /v1/participants", handler.CreateParticipant)
	mux.HandleFunc("GET /v1/participants/{participantID}", handler.GetParticipant)
	mux.HandleFunc("PUT /v1/participants/{participantID}", handler.UpdateParticipant)
	mux.HandleFunc("DELETE /v1/participants/{participantID}", handler.DeleteParticipant)

	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("POST /v1/sports", handler.CreateSport)
	mux.HandleFunc("GET /v1/sports/{sportID}", handler.GetSport)
	mux.HandleFunc("PUT /v1/sports/{sportID}", handler.UpdateSport)
	mux.HandleFunc("DELETE /v1/sports/{sportID}", handler.DeleteSport)
	mux.HandleFunc("GET /v1/sports/{sportID}/participations", handler.ListSportParticipations)
	mux.HandleFunc("POST /v1/sports/{sportID}/participations", handler.RegisterSportParticipants)
	mux.HandleFunc("GET /v1/sports/{sportID}/results", handler.ListSportResults)

	mux.HandleFunc("GET /v1/participations", handler.ListParticipations)
	mux.HandleFunc("POST /v1/participations", handler.RegisterParticipation)
	mux.HandleFunc("DELETE /v1/participations/{participationID}", handler.DeleteParticipation)

	mux.HandleFunc("GET /v1/results", handler.ListResults)
	mux.HandleFunc("POST /v1/results", handler.RecordResult)
	mux.HandleFunc("DELETE /v1/results/{resultID}", handler.DeleteResult)

	mux.HandleFunc("GET /v1/ranking", handler.GetRanking)
}
