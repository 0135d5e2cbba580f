// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"

	"github.com/mcfscore/mcfscore/dataset"
	"github.com/mcfscore/mcfscore/report"
	"github.com/mcfscore/mcfscore/solution"
)

// MaxBodyBytes caps the size of a posted solution.
const MaxBodyBytes = 32 << 20

// Handler evaluates solutions against a fixed reference dataset. It is safe
// for concurrent use; the reference network is only read.
type Handler struct {
	ref         *dataset.Reference
	logger      *slog.Logger
	capacity    float64
	parallelism int
	started     time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithDefaultCapacity sets the vehicle capacity used when a request has no
// capacity parameter.
func WithDefaultCapacity(c float64) Option {
	return func(h *Handler) { h.capacity = c }
}

// WithParallelism sets the aggregation parallelism of every evaluation.
func WithParallelism(n int) Option {
	return func(h *Handler) { h.parallelism = n }
}

// NewHandler returns a Handler serving ref.
func NewHandler(ref *dataset.Reference, opts ...Option) *Handler {
	h := &Handler{
		ref:      ref,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		capacity: solution.DefaultVehicleCapacity,
		started:  time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts the endpoints on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/api/evaluate", h.Evaluate).Methods(http.MethodPost)
}

// NewRouter returns a router with the handler's routes mounted behind
// panic recovery and access logging.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(recoverer(h.logger), accessLog(h.logger))
	h.RegisterRoutes(r)
	return r
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	GoVersion string `json:"go_version"`
	Offices         int    `json:"offices"`
	TransferOffices int    `json:"transfer_offices"`
	Edges           int    `json:"edges"`
	Requests        int    `json:"requests"`
}

// Health reports liveness and the size of the loaded reference.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	st := h.ref.Network.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Uptime:          time.Since(h.started).Round(time.Second).String(),
		GoVersion:       runtime.Version(),
		Offices:         st.OfficeCount,
		TransferOffices: st.TransferOfficeCount,
		Edges:           st.EdgeCount,
		Requests:        len(h.ref.Requests),
	})
}

// EvaluateResponse is the body of a successful POST /api/evaluate.
type EvaluateResponse struct {
	Name                string                `json:"name"`
	Summary             string                `json:"summary"`
	Metrics             dataset.MetricsDoc    `json:"metrics"`
	TransportLegs       []dataset.LegExport   `json:"transport_legs"`
	Omissions           []dataset.OmissionDoc `json:"omissions"`
	CoverageFindings    []string              `json:"coverage_findings"`
	CapacityFindings    []string              `json:"capacity_findings"`
	UnexpectedRequests  []string              `json:"unexpected_requests"`
	UnreachableRequests []string              `json:"unreachable_requests"`
	TransfersAccounted  bool                  `json:"transfers_accounted"`
	Report              string                `json:"report"`
}

// ErrorResponse is the body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Evaluate scores the posted structured solution.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		name = "api"
	}
	capacity := h.capacity
	if raw := q.Get("capacity"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid capacity: "+raw)
			return
		}
		capacity = v
	}

	doc, err := dataset.DecodeDocument(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	set, err := doc.Set()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sol, err := solution.Build(set, h.ref.Network,
		solution.WithVehicleCapacity(capacity),
		solution.WithParallelism(h.parallelism),
		solution.WithLogger(h.logger.With(slog.String("solution", name))))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solution.ErrBadCapacity) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err.Error())
		return
	}

	findings := report.Collect(sol, h.ref.Requests, nil)
	findings.TransfersUnaccounted = !h.ref.HasOffices
	if findings.Unreachable, err = h.ref.UnreachableRequests(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	var text bytes.Buffer
	if err := report.DetailedPlain(&text, name, sol, findings); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("solution evaluated",
		slog.String("solution", name),
		slog.Int("flows", set.Len()),
		slog.Float64("total_cost", sol.Metrics().TotalCost),
		slog.Int("findings", findings.Count()))

	writeJSON(w, http.StatusOK, EvaluateResponse{
		Name:                name,
		Summary:             report.Summary(sol),
		Metrics:             dataset.NewMetricsDoc(sol.Metrics()),
		TransportLegs:       dataset.NewLegExports(sol.Legs()),
		Omissions:           dataset.NewOmissionDocs(findings.Omissions),
		CoverageFindings:    stringify(findings.Coverage),
		CapacityFindings:    stringify(findings.Capacity),
		UnexpectedRequests:  stringify(findings.Unexpected),
		UnreachableRequests: stringify(findings.Unreachable),
		TransfersAccounted:  h.ref.HasOffices,
		Report:              text.String(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

func stringify[T interface{ String() string }](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}
	return out
}
