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

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("PUT /v1/matches/{matchID}/report", handler.PutMatchReport)
	mux.HandleFunc("GET /v1/matches/{matchID}/report", handler.GetMatchReport)
}

func registerBuzzerbeaterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/{matchID}/buzzerbeaters", handler.GetMatchBuzzerbeaters)
	mux.HandleFunc("GET /v1/matches/{matchID}/buzzerbeaters/stored", handler.ListStoredBuzzerbeaters)
	mux.HandleFunc("POST /v1/buzzerbeaters/bulk", handler.BulkBuzzerbeaters)
	mux.HandleFunc("POST /v1/buzzerbeaters/analyze", handler.AnalyzeBuzzerbeaters)
}
