package health

import (
	"net/http"

	"lbm/config"
	"lbm/infras/otel"
	"lbm/infras/postgres"
	"lbm/shared/constant"
	"lbm/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	db   *postgres.Connection
	cfg  *config.Config
	otel otel.Otel
}

func New(db *postgres.Connection, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		db:   db,
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/health", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHealth)
		routerGroup.Get("/db", handler.GetDatabaseHealth)
	})
}

type healthResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

type databaseHealthResponse struct {
	Connected bool   `json:"connected"`
	State     string `json:"state"`
	Database  string `json:"database"`
	Host      string `json:"host"`
}

// GetHealth reports process liveness.
// @Summary Health check
// @Description Report that the service process is up.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[healthResponse] "Service status"
// @Router /api/health [get]
func (handler *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHealth")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Name:   handler.cfg.App.Name,
	})
}

// GetDatabaseHealth reports database connectivity.
// @Summary Database health check
// @Description Ping the database and report connectivity state.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[databaseHealthResponse] "Database reachable"
// @Failure 503 {object} response.Data[databaseHealthResponse] "Database unreachable"
// @Router /api/health/db [get]
func (handler *Handler) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDatabaseHealth")
	defer scope.End()

	res := databaseHealthResponse{
		Database: handler.cfg.DB.Postgres.Read.Name,
		Host:     handler.cfg.DB.Postgres.Read.Host,
	}

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("database health check failed")

		res.Connected = false
		res.State = "disconnected"

		response.WithJSON(w, http.StatusServiceUnavailable, res)

		return
	}

	res.Connected = true
	res.State = "connected"

	response.WithJSON(w, http.StatusOK, res)
}
