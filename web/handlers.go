package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/mww/fantasy_report/controller"
	"github.com/mww/fantasy_report/export"
	"github.com/mww/fantasy_report/loader"
	"github.com/mww/fantasy_report/model"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

const contentTypeCSV = "text/csv; charset=utf-8"

// errorStatus maps controller and input errors to a response status.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, controller.ErrNotFound),
		errors.Is(err, loader.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrMalformedInput),
		errors.Is(err, model.ErrUnknownTeam):
		return http.StatusUnprocessableEntity
	case errors.Is(err, controller.ErrNoReport):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, render *render.Render, logger *zap.SugaredLogger, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "path", r.URL.Path, "error", err)
	}
	render.JSON(w, status, map[string]string{"error": err.Error()})
}

// respond writes data as JSON, or t as CSV when the request asks for
// format=csv.
func respond(w http.ResponseWriter, r *http.Request, render *render.Render, data any, t *export.Table) {
	switch r.URL.Query().Get("format") {
	case "", "json":
		render.JSON(w, http.StatusOK, data)
	case "csv":
		var buf bytes.Buffer
		if err := t.WriteCSV(&buf); err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		render.Render(w, renderCSV(http.StatusOK), buf.Bytes())
	default:
		render.JSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown format: %s", r.URL.Query().Get("format"))})
	}
}

func renderCSV(status int) render.Data {
	return render.Data{Head: render.Head{ContentType: contentTypeCSV, Status: status}}
}

func weekParam(r *http.Request) (int, error) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		return 0, errors.Wrapf(controller.ErrNotFound, "week %q", chi.URLParam(r, "week"))
	}
	return week, nil
}

func summaryPageHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			render.HTML(w, errorStatus(err), "error", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "summary", report)
	}
}

func weekPageHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := weekParam(r)
		if err == nil {
			var wr *model.WeekReport
			if wr, err = ctrl.Week(r.Context(), week); err == nil {
				render.HTML(w, http.StatusOK, "week", wr)
				return
			}
		}
		render.HTML(w, errorStatus(err), "error", err.Error())
	}
}

func summaryHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, report.Summary, export.SummaryTable(report.Summary))
	}
}

func standingsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, report.Standings, export.StandingsTable(report.Standings))
	}
}

func powerRankingsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, report.PowerRankings, export.PowerRankingsTable(report.PowerRankings))
	}
}

func positionsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, report.Positions, export.PositionRanksTable(report.Positions))
	}
}

func pointsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pos := r.URL.Query().Get("position")
		filter, ok := model.ParsePointsFilter(pos)
		if !ok {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("unknown position: %s", pos)})
			return
		}

		points, err := ctrl.PointsFor(r.Context(), filter)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, points, export.PointsForTable(points))
	}
}

type trending struct {
	OnFire []string `json:"on_fire"`
	Cold   []string `json:"cold"`
}

func trendingHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}

		t := &export.Table{Header: []string{"Team", "Trend"}}
		for _, team := range report.Summary.OnFire {
			t.Rows = append(t.Rows, []string{team, string(model.BADGE_FIRE)})
		}
		for _, team := range report.Summary.Cold {
			t.Rows = append(t.Rows, []string{team, string(model.BADGE_COLD)})
		}
		respond(w, r, render, trending{OnFire: report.Summary.OnFire, Cold: report.Summary.Cold}, t)
	}
}

func playoffsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Report(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, report.Summary.Playoffs, export.TeamsTable(report.Summary.Playoffs))
	}
}

func weekAdvancedHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := weekParam(r)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		wr, err := ctrl.Week(r.Context(), week)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, wr.Advanced, export.WeekAdvancedTable(wr.Advanced))
	}
}

func weekPositionsHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := weekParam(r)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		wr, err := ctrl.Week(r.Context(), week)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, wr.Positions, export.PositionRanksTable(wr.Positions))
	}
}

func matchupHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := weekParam(r)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			writeError(w, r, render, logger, errors.Wrapf(controller.ErrNotFound, "matchup %q", chi.URLParam(r, "index")))
			return
		}

		sheet, err := ctrl.Matchup(r.Context(), week, index)
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		respond(w, r, render, sheet, export.MatchupSheetTable(*sheet))
	}
}

type rebuildResult struct {
	ID           string `json:"id"`
	Weeks        []int  `json:"weeks"`
	SkippedWeeks []int  `json:"skipped_weeks"`
}

func rebuildHandler(ctrl controller.C, render *render.Render, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Rebuild(r.Context())
		if err != nil {
			writeError(w, r, render, logger, err)
			return
		}
		render.JSON(w, http.StatusOK, rebuildResult{ID: report.ID, Weeks: report.Weeks, SkippedWeeks: report.SkippedWeeks})
	}
}
