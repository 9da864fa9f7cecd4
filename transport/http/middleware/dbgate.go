package middleware

import (
	"net/http"

	"lbm/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	dbUnavailableError   = "Database connection unavailable"
	dbUnavailableMessage = "Please make sure PostgreSQL is running"
	dbUnavailableHint    = "Start PostgreSQL and restart the service, or check the DB_POSTGRES_* settings"
	dbStateDisconnected  = "disconnected"
)

// DatabaseGate refuses requests while the database is unreachable, so every
// data endpoint degrades into one uniform 503 instead of scattered query
// errors. Health endpoints are mounted outside the gate.
func (a *appMiddleware) DatabaseGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.db.Ping(r.Context()); err != nil {
			log.Warn().Err(err).Str("path", r.URL.Path).Msg("request refused, database unreachable")

			response.WithUnavailable(w, dbUnavailableError, dbUnavailableMessage, dbStateDisconnected, dbUnavailableHint)

			return
		}

		next.ServeHTTP(w, r)
	})
}
