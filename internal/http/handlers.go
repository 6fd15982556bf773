// Package http exposes the assistant's JSON API.
package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"time"

	"yahoo-fantasy-assistant/internal/domain"
	"yahoo-fantasy-assistant/internal/logging"
	"yahoo-fantasy-assistant/internal/trade"
	"yahoo-fantasy-assistant/internal/valuation"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the valuation and trade services.
type Handler struct {
	valuations *valuation.Service
	trades     *trade.Engine
	teamKey    string
	logger     *slog.Logger
	now        nowFunc
}

// NewHandler constructs a Handler. teamKey is the default team for the
// /api/team routes; callers may override it per request with ?team_key=.
func NewHandler(valuations *valuation.Service, trades *trade.Engine, teamKey string, logger *slog.Logger) *Handler {
	return &Handler{
		valuations: valuations,
		trades:     trades,
		teamKey:    teamKey,
		logger:     logger,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

type teamResponse struct {
	TeamKey string                   `json:"team_key"`
	Players []domain.PlayerValuation `json:"players"`
	Risk    riskMeta                 `json:"risk"`
}

type riskMeta struct {
	Trained   bool   `json:"trained"`
	ModelRows int    `json:"model_rows"`
	Note      string `json:"note,omitempty"`
}

// Team returns the valued roster, sorted descending by fantasy value.
func (h *Handler) Team(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamKey := h.resolveTeamKey(r)
	valuations, report, err := h.valuations.ValuateRoster(r.Context(), teamKey)
	if err != nil {
		h.upstreamError(w, r, "valuate roster", err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, teamResponse{
		TeamKey: teamKey,
		Players: valuations,
		Risk:    riskMeta{Trained: report.Trained, ModelRows: report.ModelRows, Note: report.Note},
	})
}

type valueStatsResponse struct {
	TeamKey           string                   `json:"team_key"`
	GeneratedAt       string                   `json:"generated_at"`
	Summary           domain.RosterSummary     `json:"summary"`
	PlayersByAdjusted []domain.PlayerValuation `json:"players_by_adjusted"`
}

// ValueStats returns the roster summary plus the risk-adjusted ranking.
func (h *Handler) ValueStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamKey := h.resolveTeamKey(r)
	valuations, _, err := h.valuations.ValuateRoster(r.Context(), teamKey)
	if err != nil {
		h.upstreamError(w, r, "valuate roster", err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, valueStatsResponse{
		TeamKey:           teamKey,
		GeneratedAt:       h.now().UTC().Format(time.RFC3339),
		Summary:           valuation.Summarize(valuations),
		PlayersByAdjusted: valuation.RankByAdjusted(valuations),
	})
}

// Risk returns the per-player availability report for the roster.
func (h *Handler) Risk(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamKey := h.resolveTeamKey(r)
	_, report, err := h.valuations.ValuateRoster(r.Context(), teamKey)
	if err != nil {
		h.upstreamError(w, r, "assess roster", err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, report)
}

type tradeIdeasResponse struct {
	TeamKey string             `json:"team_key"`
	Ideas   []domain.TradeIdea `json:"ideas"`
}

// TradeIdeas returns drop/add suggestions against the free-agent pool.
func (h *Handler) TradeIdeas(w nethttp.ResponseWriter, r *nethttp.Request) {
	teamKey := h.resolveTeamKey(r)
	ideas, err := h.trades.Ideas(r.Context(), teamKey)
	if err != nil {
		h.upstreamError(w, r, "build trade ideas", err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, tradeIdeasResponse{TeamKey: teamKey, Ideas: ideas})
}

// CompareTrade evaluates a proposed trade given away= and receive= query
// values, each a comma-separated list of player names.
func (h *Handler) CompareTrade(w nethttp.ResponseWriter, r *nethttp.Request) {
	awayNames := trade.ParseNames(r.URL.Query().Get("away"))
	receiveNames := trade.ParseNames(r.URL.Query().Get("receive"))
	if len(awayNames) == 0 && len(receiveNames) == 0 {
		h.writeError(w, nethttp.StatusBadRequest, "away and receive query parameters are required")
		return
	}

	comparison, err := h.trades.Compare(r.Context(), awayNames, receiveNames)
	if err != nil {
		h.upstreamError(w, r, "compare trade", err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, comparison)
}

func (h *Handler) resolveTeamKey(r *nethttp.Request) string {
	if override := r.URL.Query().Get("team_key"); override != "" {
		return override
	}
	return h.teamKey
}

func (h *Handler) upstreamError(w nethttp.ResponseWriter, r *nethttp.Request, action string, err error) {
	logging.Error(logging.FromContext(r.Context(), h.logger), action+" failed", err)
	h.writeError(w, nethttp.StatusBadGateway, "league data unavailable")
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(h.logger, "failed to encode response", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
