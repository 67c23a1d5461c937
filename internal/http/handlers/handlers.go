package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
	"github.com/preston-bernstein/mlb-stats-service/internal/timeutil"
)

// PageService is the application layer the handlers serve from.
type PageService interface {
	Home(ctx context.Context) (domain.HomePageContent, error)
	Team(ctx context.Context, teamID int, opts domain.TeamPageOptions) (domain.TeamPageContent, error)
	Schedule(ctx context.Context, q domain.ScheduleQuery) (*table.Table, error)
	Standings(ctx context.Context, season int) (*table.Table, error)
	Stats(ctx context.Context, season int) (domain.StatGroupSet, error)
}

// Handler wires HTTP routes to the page service.
type Handler struct {
	pages  PageService
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(pages PageService, logger *slog.Logger) *Handler {
	return &Handler{
		pages:  pages,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Home serves today's scoreboard, standings and league stats.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	page, err := h.pages.Home(r.Context())
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, page, h.logger)
}

// Team serves the dossier for /teams/{teamID}.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil || teamID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	q := r.URL.Query()
	var opts domain.TeamPageOptions
	if opts.Date, err = parseDate(q.Get("date")); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if opts.Season, err = parseSeason(q.Get("season")); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if raw := q.Get("partial"); raw != "" {
		if opts.AllowPartial, err = strconv.ParseBool(raw); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid partial flag", h.logger)
			return
		}
	}

	page, err := h.pages.Team(r.Context(), teamID, opts)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, page, h.logger)
}

// Schedule serves the games selected by the date, startDate/endDate, season,
// teamId and gameType query parameters. No parameters means today.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	query, err := parseScheduleQuery(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	games, err := h.pages.Schedule(r.Context(), query)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, games, h.logger)
}

// Standings serves regular-season standings.
func (h *Handler) Standings(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, err := parseSeason(r.URL.Query().Get("season"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	standings, err := h.pages.Standings(r.Context(), season)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, standings, h.logger)
}

// Stats serves league-wide player stats.
func (h *Handler) Stats(w nethttp.ResponseWriter, r *nethttp.Request) {
	season, err := parseSeason(r.URL.Query().Get("season"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	stats, err := h.pages.Stats(r.Context(), season)
	if err != nil {
		h.writeUpstreamError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, stats, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) writeUpstreamError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	status, message := statusForError(err)
	writeError(w, r, status, message, h.logger)
}

type paramError string

func (e paramError) Error() string { return string(e) }

func parseDate(raw string) (domain.MlbDate, error) {
	if raw == "" {
		return domain.MlbDate{}, nil
	}
	t, err := timeutil.ParseDate(raw)
	if err != nil {
		return domain.MlbDate{}, paramError("invalid date format (expected YYYY-MM-DD)")
	}
	return domain.NewMlbDate(t), nil
}

func parseSeason(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season < 1876 || season > 9999 {
		return 0, paramError("invalid season")
	}
	return season, nil
}

func parseScheduleQuery(r *nethttp.Request) (domain.ScheduleQuery, error) {
	q := r.URL.Query()
	var (
		out domain.ScheduleQuery
		err error
	)
	if out.Date, err = parseDate(q.Get("date")); err != nil {
		return out, err
	}
	if out.StartDate, err = parseDate(q.Get("startDate")); err != nil {
		return out, err
	}
	if out.EndDate, err = parseDate(q.Get("endDate")); err != nil {
		return out, err
	}
	if out.StartDate.IsZero() != out.EndDate.IsZero() {
		return out, paramError("startDate and endDate must be given together")
	}
	if !out.StartDate.IsZero() && out.EndDate.Time().Before(out.StartDate.Time()) {
		return out, paramError("endDate is before startDate")
	}
	if out.Season, err = parseSeason(q.Get("season")); err != nil {
		return out, err
	}
	if raw := q.Get("teamId"); raw != "" {
		if out.TeamID, err = strconv.Atoi(raw); err != nil || out.TeamID <= 0 {
			return out, paramError("invalid teamId")
		}
	}
	if raw := q.Get("gameType"); raw != "" {
		for _, gt := range strings.Split(raw, ",") {
			if gt = strings.TrimSpace(gt); gt != "" {
				out.GameTypes = append(out.GameTypes, gt)
			}
		}
	}
	return out, nil
}
