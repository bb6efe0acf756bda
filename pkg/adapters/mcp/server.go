package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/internal/logging"
	"github.com/aretw0/chempath/pkg/domain"
	"github.com/aretw0/chempath/pkg/rules"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

const rulesURI = "chempath://rules"

// Planner defines the interface required by the MCP server.
type Planner interface {
	Plan(ctx context.Context, q chempath.Query) (*chempath.Result, error)
	Rules() rules.Set
}

// FindPathResponse is the structured result of the find_path tool.
type FindPathResponse struct {
	Found     bool     `json:"found" jsonschema_description:"False when the target cannot be reached"`
	Formulas  []string `json:"formulas" jsonschema_description:"Compound formulas from start to target"`
	Reactions []string `json:"reactions" jsonschema_description:"One reaction line per step"`
	Rules     []string `json:"rules" jsonschema_description:"Rule applied at each step"`
	Visited   int      `json:"visited" jsonschema_description:"Distinct compounds discovered"`
	Message   string   `json:"message,omitempty"`
}

// findPathArgs holds the decoded tool arguments. Carbon counts are kept raw
// and converted by carbonsArg, which accepts numbers and numeric strings only.
type findPathArgs struct {
	StartGroup    string `mapstructure:"start_group"`
	StartCarbons  any    `mapstructure:"start_carbons"`
	TargetGroup   string `mapstructure:"target_group"`
	TargetCarbons any    `mapstructure:"target_carbons"`
}

// Server wraps the Planner and exposes it as an MCP Server.
type Server struct {
	planner   Planner
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(planner Planner, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		planner:   planner,
		logger:    logger,
		mcpServer: server.NewMCPServer("chempath-mcp", strings.TrimSpace(chempath.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until
// ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func groupNames() []string {
	groups := domain.Groups()
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.String()
	}
	return names
}

func (s *Server) registerTools() {
	// TOOL: find_path
	findTool := mcp.NewTool("find_path",
		mcp.WithDescription("Find the shortest sequence of reactions converting a start compound into a target compound."),
		mcp.WithString("start_group", mcp.Required(), mcp.Enum(groupNames()...), mcp.Description("Functional group of the start compound")),
		mcp.WithNumber("start_carbons", mcp.Required(), mcp.Min(1), mcp.Description("Carbon count of the start compound")),
		mcp.WithString("target_group", mcp.Required(), mcp.Enum(groupNames()...), mcp.Description("Functional group of the target compound")),
		mcp.WithNumber("target_carbons", mcp.Required(), mcp.Min(1), mcp.Description("Carbon count of the target compound")),
		mcp.WithOutputSchema[FindPathResponse](),
	)
	s.mcpServer.AddTool(findTool, mcp.NewStructuredToolHandler(s.handleFindPath))

	// TOOL: list_rules
	s.mcpServer.AddTool(mcp.NewTool("list_rules",
		mcp.WithDescription("List the reaction rules in the order they are applied."),
	), s.handleListRules)
}

func (s *Server) handleFindPath(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (FindPathResponse, error) {
	q, err := decodeQuery(args)
	if err != nil {
		s.logger.Warn("MCP find_path: Input rejected", "error", err)
		return FindPathResponse{}, err
	}

	res, err := s.planner.Plan(ctx, q)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidInput) {
			s.logger.Error("MCP find_path failed", "error", err)
		}
		return FindPathResponse{}, err
	}

	resp := FindPathResponse{
		Found:     res.Found,
		Formulas:  res.Path.Formulas(),
		Reactions: res.Path.Descriptions(),
		Rules:     make([]string, len(res.Path.Steps)),
		Visited:   res.Visited,
	}
	for i, step := range res.Path.Steps {
		resp.Rules[i] = step.Rule
	}
	if !res.Found {
		resp.Message = "No path found!"
	}
	return resp, nil
}

// decodeQuery maps raw tool arguments onto a Query. Carbon counts may be
// JSON numbers or numeric strings; anything that is not a whole number is
// rejected for its side.
func decodeQuery(args map[string]interface{}) (chempath.Query, error) {
	var raw findPathArgs
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &raw,
		ErrorUnused: true,
	})
	if err != nil {
		return chempath.Query{}, err
	}
	if err := dec.Decode(args); err != nil {
		return chempath.Query{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	sc, err := carbonsArg(domain.SideStart, raw.StartCarbons)
	if err != nil {
		return chempath.Query{}, err
	}
	tc, err := carbonsArg(domain.SideTarget, raw.TargetCarbons)
	if err != nil {
		return chempath.Query{}, err
	}
	return chempath.Query{
		StartGroup:    raw.StartGroup,
		StartCarbons:  sc,
		TargetGroup:   raw.TargetGroup,
		TargetCarbons: tc,
	}, nil
}

func carbonsArg(side domain.Side, v any) (int, error) {
	switch n := v.(type) {
	case float64:
		return domain.CarbonsFromNumber(side, n)
	case float32:
		return domain.CarbonsFromNumber(side, float64(n))
	case int:
		return domain.CarbonsFromNumber(side, float64(n))
	case int64:
		return domain.CarbonsFromNumber(side, float64(n))
	case json.Number:
		return domain.ParseCarbons(side, n.String())
	case string:
		return domain.ParseCarbons(side, n)
	case nil:
		return 0, &domain.ValidationError{Side: side, Field: "carbons", Reason: "carbon count is required"}
	default:
		return 0, &domain.ValidationError{
			Side:   side,
			Field:  "carbons",
			Value:  fmt.Sprint(v),
			Reason: "carbon count must be a number",
		}
	}
}

func (s *Server) handleListRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(s.planner.Rules().Infos())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) registerResources() {
	// EXPOSE: chempath://rules
	s.mcpServer.AddResource(mcp.NewResource(rulesURI, "Reaction Rules",
		mcp.WithMIMEType("application/json"),
	), s.readRules)
}

func (s *Server) readRules(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.planner.Rules().Infos())
	if err != nil {
		return nil, fmt.Errorf("failed to encode rules: %w", err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      rulesURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
