package http

import nethttp "net/http"

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/api/team", handler.Team)
	mux.HandleFunc("/api/team/value-stats", handler.ValueStats)
	mux.HandleFunc("/api/team/risk", handler.Risk)
	mux.HandleFunc("/api/team/trade-ideas", handler.TradeIdeas)
	mux.HandleFunc("/api/trades/compare", handler.CompareTrade)
	return mux
}
