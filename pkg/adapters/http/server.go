package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/internal/logging"
	"github.com/aretw0/chempath/internal/presentation/graph"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Planner defines the search core used by the handlers.
type Planner interface {
	Plan(ctx context.Context, q chempath.Query) (*chempath.Result, error)
	Trace(ctx context.Context, q chempath.Query, hooks domain.SearchHooks) (*chempath.Result, error)
	Explore(start domain.Compound, limit int) domain.Graph
	Rules() rules.Set
}

// Server holds the handler dependencies.
type Server struct {
	Planner      Planner
	Logger       *slog.Logger
	Gatherer     prometheus.Gatherer
	ExploreLimit int
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = l
	}
}

// WithGatherer exposes the given registry at /metrics.
// Without it /metrics serves prometheus.DefaultGatherer.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithExploreLimit sets the default and maximum node count for /graph.
func WithExploreLimit(n int) Option {
	return func(s *Server) {
		s.ExploreLimit = n
	}
}

// DefaultExploreLimit bounds /graph when no limit is configured.
const DefaultExploreLimit = 50

// NewHandler creates a new HTTP handler for the planner.
func NewHandler(planner Planner, opts ...Option) http.Handler {
	s := &Server{
		Planner:      planner,
		Logger:       logging.NewNop(),
		Gatherer:     prometheus.DefaultGatherer,
		ExploreLimit: DefaultExploreLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/groups", s.ListGroups)
	r.Get("/rules", s.ListRules)
	r.Route("/paths", func(r chi.Router) {
		r.Get("/", s.FindPathQuery)
		r.Post("/", s.FindPath)
		r.Get("/trace", s.TracePath)
	})
	r.Get("/graph", s.ExploreGraph)
	r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.Logger.Error("Failed to load OpenAPI spec", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"app":               "chempath-http",
		"version":           strings.TrimSpace(chempath.Version),
		"api_version":       apiVersion,
		"rules_fingerprint": s.Planner.Rules().Fingerprint(),
	})
}

type groupInfo struct {
	Name       domain.FunctionalGroup `json:"name"`
	MinCarbons int                    `json:"min_carbons"`
}

// ListGroups handles the GET /groups request.
func (s *Server) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := domain.Groups()
	resp := make([]groupInfo, len(groups))
	for i, g := range groups {
		resp[i] = groupInfo{Name: g, MinCarbons: g.MinCarbons()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListRules handles the GET /rules request.
func (s *Server) ListRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Planner.Rules().Infos())
}

type compoundRef struct {
	Group   string      `json:"group"`
	Carbons json.Number `json:"carbons"`
}

// PathRequest is the POST /paths body.
type PathRequest struct {
	Start  compoundRef `json:"start"`
	Target compoundRef `json:"target"`
}

func (ref compoundRef) carbons(side domain.Side) (int, error) {
	if ref.Carbons == "" {
		return 0, &domain.ValidationError{Side: side, Field: "carbons", Reason: "carbon count is required"}
	}
	f, err := ref.Carbons.Float64()
	if err != nil {
		return 0, &domain.ValidationError{Side: side, Field: "carbons", Value: ref.Carbons.String(), Reason: "carbon count must be an integer"}
	}
	return domain.CarbonsFromNumber(side, f)
}

func (p PathRequest) query() (chempath.Query, error) {
	sc, err := p.Start.carbons(domain.SideStart)
	if err != nil {
		return chempath.Query{}, err
	}
	tc, err := p.Target.carbons(domain.SideTarget)
	if err != nil {
		return chempath.Query{}, err
	}
	return chempath.Query{
		StartGroup:    p.Start.Group,
		StartCarbons:  sc,
		TargetGroup:   p.Target.Group,
		TargetCarbons: tc,
	}, nil
}

// queryFromURL reads the four search parameters from the URL.
func queryFromURL(r *http.Request) (chempath.Query, error) {
	v := r.URL.Query()
	sc, err := domain.ParseCarbons(domain.SideStart, v.Get("start_carbons"))
	if err != nil {
		return chempath.Query{}, err
	}
	tc, err := domain.ParseCarbons(domain.SideTarget, v.Get("target_carbons"))
	if err != nil {
		return chempath.Query{}, err
	}
	return chempath.Query{
		StartGroup:    v.Get("start_group"),
		StartCarbons:  sc,
		TargetGroup:   v.Get("target_group"),
		TargetCarbons: tc,
	}, nil
}

// FindPath handles the POST /paths request.
func (s *Server) FindPath(w http.ResponseWriter, r *http.Request) {
	var body PathRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		s.Logger.Warn("FindPath: Invalid request body", "error", err)
		return
	}
	q, err := body.query()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.plan(w, r, q)
}

// FindPathQuery handles the GET /paths request.
func (s *Server) FindPathQuery(w http.ResponseWriter, r *http.Request) {
	q, err := queryFromURL(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.plan(w, r, q)
}

func (s *Server) plan(w http.ResponseWriter, r *http.Request, q chempath.Query) {
	res, err := s.Planner.Plan(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.Logger.Debug("path served", "start", res.Start.Key(), "target", res.Target.Key(), "found", res.Found, "cached", res.Cached)
	writeJSON(w, http.StatusOK, res)
}

// ExploreGraph handles the GET /graph request.
func (s *Server) ExploreGraph(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	carbons, err := domain.ParseCarbons(domain.SideStart, v.Get("carbons"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	start, err := domain.ResolveCompound(domain.SideStart, v.Get("group"), carbons)
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := s.ExploreLimit
	if raw := v.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid limit %q", raw), Field: "limit"})
			return
		}
		limit = min(n, s.ExploreLimit)
	}

	g := s.Planner.Explore(start, limit)
	switch v.Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, g)
	case "mermaid":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, graph.GenerateMermaid(g, nil))
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown format %q", v.Get("format")), Field: "format"})
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Side  string `json:"side,omitempty"`
	Field string `json:"field,omitempty"`
	Min   int    `json:"min,omitempty"`
}

// writeError maps domain errors to status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Side:  string(ve.Side),
			Field: ve.Field,
			Min:   ve.Min,
		})
	case errors.Is(err, domain.ErrSearchLimit):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		s.Logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
