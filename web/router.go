package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mww/fantasy_report/controller"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

func getRouter(ctrl controller.C, render *render.Render, allowedOrigins []string, logger *zap.SugaredLogger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", summaryPageHandler(ctrl, render, logger))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/summary", summaryHandler(ctrl, render, logger))
	r.Get("/standings", standingsHandler(ctrl, render, logger))
	r.Get("/power-rankings", powerRankingsHandler(ctrl, render, logger))
	r.Get("/positions", positionsHandler(ctrl, render, logger))
	r.Get("/points", pointsHandler(ctrl, render, logger))
	r.Get("/trending", trendingHandler(ctrl, render, logger))
	r.Get("/playoffs", playoffsHandler(ctrl, render, logger))

	r.Route("/weeks/{week:\\d+}", func(r chi.Router) {
		r.Get("/", weekPageHandler(ctrl, render, logger))
		r.Get("/advanced", weekAdvancedHandler(ctrl, render, logger))
		r.Get("/positions", weekPositionsHandler(ctrl, render, logger))
		r.Get("/matchups/{index:\\d+}", matchupHandler(ctrl, render, logger))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second)) // Set a longer timeout for /admin actions
		r.Post("/rebuild", rebuildHandler(ctrl, render, logger))
	})

	return r
}
