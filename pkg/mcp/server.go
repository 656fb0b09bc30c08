// Package mcp exposes the classification engine to MCP clients over stdio
// or streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/ncruces/go-strftime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/rwjstewart/gfsbuddy/pkg/engine"
	"github.com/rwjstewart/gfsbuddy/pkg/rule"
	"github.com/rwjstewart/gfsbuddy/pkg/version"
)

// DefaultDateFormat is the strftime format assumed for classify_date calls
// that don't specify one.
const DefaultDateFormat = "%Y-%m-%d"

// Classifier evaluates dates against a rule schedule.
type Classifier interface {
	Classify(ctx context.Context, t time.Time) (engine.Result, bool)
	Registry() *rule.Registry
}

// Server implements the MCP server for gfsbuddy.
type Server struct {
	classifier Classifier
	server     *mcp.Server
	tracer     trace.Tracer
	address    string
}

// NewServer creates a new MCP server instance. An empty or "stdio" address
// serves on stdio; anything else is a listen address for streamable HTTP.
func NewServer(address string, classifier Classifier) (*Server, error) {
	if classifier == nil {
		return nil, errors.New("classifier must not be nil")
	}

	impl := &mcp.Implementation{
		Name:    name,
		Version: version.GetVersion(),
	}

	opts := &mcp.ServerOptions{
		Instructions: instructions,
	}

	s := &Server{
		address:    address,
		server:     mcp.NewServer(impl, opts),
		classifier: classifier,
		tracer:     otel.Tracer("mcp"),
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "classify_date",
		Description: "Classify a date against the tape rotation schedule, returning the first enabled rule that matches and its rendered message.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"date": {
					Type:        "string",
					Description: "The date to classify.",
				},
				"format": {
					Type:        "string",
					Description: "strftime format of the date. Defaults to %Y-%m-%d.",
				},
			},
			Required: []string{"date"},
		},
	}, WithTracing(s.tracer, s.handleClassifyDate))

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the tape rotation schedule: every rule in evaluation order, with its message template and enabled state.",
		InputSchema: &jsonschema.Schema{
			Type:       "object",
			Properties: map[string]*jsonschema.Schema{},
		},
	}, WithTracing(s.tracer, s.handleListRules))
}

// handleClassifyDate handles the classify_date tool call.
func (s *Server) handleClassifyDate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	params ClassifyDateParams,
) (*mcp.CallToolResult, ClassifyDateResult, error) {
	format := params.Format
	if format == "" {
		format = DefaultDateFormat
	}

	t, err := strftime.Parse(format, params.Date)
	if err != nil {
		return nil, ClassifyDateResult{}, fmt.Errorf("parse date %q with format %q: %w", params.Date, format, err)
	}

	result := ClassifyDateResult{}

	res, ok := s.classifier.Classify(ctx, t)
	if ok {
		result.Matched = true
		result.Rule = res.Rule
		result.Message = res.Message
	}

	return createClassifyDateResult(result, params.Date), result, nil
}

// handleListRules handles the list_rules tool call.
func (s *Server) handleListRules(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListRulesParams,
) (*mcp.CallToolResult, ListRulesResult, error) {
	result := ListRulesResult{
		Rules: []RuleInfo{},
	}

	populateResultFromRegistry(&result, s.classifier.Registry().All())

	return createListRulesResult(result), result, nil
}

func (s *Server) Server() *mcp.Server {
	return s.server
}

// Serve starts the MCP server.
func (s *Server) Serve(ctx context.Context) error {
	slog.InfoContext(ctx, "starting MCP server", slog.String("address", s.address))

	if s.address == "" || s.address == "stdio" {
		err := s.serveStdio(ctx)
		if err != nil {
			return fmt.Errorf("serve Stdio: %w", err)
		}

		return nil
	}

	err := s.serveHTTP()
	if err != nil {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	return nil
}

func (s *Server) serveHTTP() error {
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)

	server := &http.Server{
		Addr:    s.address,
		Handler: handler,

		ReadHeaderTimeout: 10 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}

func (s *Server) serveStdio(ctx context.Context) error {
	t := &mcp.LoggingTransport{
		Transport: &mcp.StdioTransport{},
		Writer:    os.Stderr,
	}

	err := s.server.Run(ctx, t)
	if err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
