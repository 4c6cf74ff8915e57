package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) http.Handler {
	// Summarization API
	mux.HandleFunc("/summarize", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.Summarize(w, r)
	})

	// Observability APIs
	mux.HandleFunc("/health", h.GetHealth)
	mux.HandleFunc("/metrics", h.GetMetrics)

	// Index / catch-all
	mux.HandleFunc("/", h.Index)

	// Middlewares
	return Chain(
		mux,
		RecoveryMiddleware(h.logger, h.metrics),
		LoggingMiddleware(h.logger),
	)
}
