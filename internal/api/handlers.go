package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"host-insight/internal/analysis"
	"host-insight/internal/health"
	"host-insight/internal/logs"
	"host-insight/internal/metrics"
	"host-insight/internal/schema"
)

// ServiceName and Version are reported on the index route.
const ServiceName = "host-insight"

var Version = "0.1.0"

// Summarizer produces the natural-language summary for a raw request
// payload. It never fails: upstream errors come back as descriptive text.
type Summarizer interface {
	Summarize(ctx context.Context, payload json.RawMessage) string
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	summarizer Summarizer
	metrics    *metrics.Registry
	logger     *logs.Logger
	analyzer   *health.Analyzer
}

// NewHandler creates a new API handler.
func NewHandler(
	summarizer Summarizer,
	reg *metrics.Registry,
	logger *logs.Logger,
) *Handler {
	return &Handler{
		summarizer: summarizer,
		metrics:    reg,
		logger:     logger,
		analyzer:   health.NewAnalyzer(reg, logger),
	}
}

// Client-facing error messages of the payload contract.
var (
	errNoData        = errors.New("No data provided")
	errInvalidJSON   = errors.New("Invalid JSON format")
	errInvalidFormat = errors.New("Invalid data format. Expected 'hosts' array.")
)

/* ---------------- POST /summarize ---------------- */

type summarizeResponse struct {
	Metrics    analysis.Report `json:"metrics"`
	Summary    string          `json:"summary"`
	HostsCount int             `json:"hosts_count"`
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	h.metrics.Inc(metrics.SummarizeRequestsTotal)

	raw, err := readPayload(r)
	if err != nil {
		h.rejectPayload(w, err)
		return
	}

	hosts, err := decodeHosts(raw)
	if err != nil {
		h.rejectPayload(w, err)
		return
	}

	report := analysis.ExtractMetrics(hosts)
	summary := h.summarizer.Summarize(r.Context(), raw)

	h.metrics.Add(metrics.HostsProcessedTotal, int64(len(hosts)))

	writeJSON(w, http.StatusOK, summarizeResponse{
		Metrics:    report,
		Summary:    summary,
		HostsCount: len(hosts),
	})
}

// rejectPayload handles payload-shape violations, which abort the request
// before either core component runs.
func (h *Handler) rejectPayload(w http.ResponseWriter, err error) {
	h.metrics.Inc(metrics.PayloadsRejectedTotal)
	h.logger.Warn("summarize payload rejected: " + err.Error())
	writeError(w, http.StatusBadRequest, err.Error())
}

// readPayload extracts the raw JSON payload from either a JSON body or the
// form field "data" carrying a JSON string.
func readPayload(r *http.Request) (json.RawMessage, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, errInvalidJSON
		}
		if len(strings.TrimSpace(string(body))) == 0 {
			return nil, errNoData
		}
		return body, nil
	}

	data := r.FormValue("data")
	if data == "" {
		return nil, errNoData
	}
	return json.RawMessage(data), nil
}

// decodeHosts validates that the payload is a JSON object with a "hosts"
// array and decodes the records.
func decodeHosts(raw json.RawMessage) ([]schema.HostRecord, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, errInvalidJSON
	}

	hostsRaw, ok := probe["hosts"]
	if !ok {
		return nil, errInvalidFormat
	}

	var hosts []schema.HostRecord
	if err := json.Unmarshal(hostsRaw, &hosts); err != nil {
		return nil, errInvalidFormat
	}
	return hosts, nil
}

/* ---------------- GET / ---------------- */

type serviceInfo struct {
	Service string   `json:"service"`
	Version string   `json:"version"`
	Routes  []string `json:"routes"`
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	// "/" is the mux catch-all; anything else under it is a 404.
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	writeJSON(w, http.StatusOK, serviceInfo{
		Service: ServiceName,
		Version: Version,
		Routes:  []string{"POST /summarize", "GET /health", "GET /metrics"},
	})
}

/* ---------------- GET /health ---------------- */

func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.analyzer.Analyze())
}

/* ---------------- GET /metrics ---------------- */

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.metrics.Snapshot())
}

/* ---------------- helpers ---------------- */

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
