package mcp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/internal/logging"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SchemaURI is the resource exposing the form definition.
const SchemaURI = "submittals://schema"

// Server wraps a ports.Wizard and exposes it as an MCP Server.
type Server struct {
	wizard    ports.Wizard
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger. Stdio transports must not log to stdout.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(wizard ports.Wizard, opts ...Option) *Server {
	s := &Server{
		wizard:    wizard,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("submittals-mcp", strings.TrimSpace(submittals.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx
// is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: start_session
	s.mcpServer.AddTool(mcp.NewTool("start_session",
		mcp.WithDescription("Start a new submittal session and return its first section."),
		mcp.WithOutputSchema[domain.View](),
	), mcp.NewStructuredToolHandler(s.handleStart))

	// TOOL: view_session
	s.mcpServer.AddTool(mcp.NewTool("view_session",
		mcp.WithDescription("Show the active section, its fields and the section checklist."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID returned by start_session")),
		mcp.WithOutputSchema[domain.View](),
	), mcp.NewStructuredToolHandler(s.handleView))

	// TOOL: set_answer
	s.mcpServer.AddTool(mcp.NewTool("set_answer",
		mcp.WithDescription("Answer one field. Multi-choice values may be given as a JSON array. File fields cannot be set here."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("key", mcp.Required(), mcp.Description("Field key, e.g. project_name")),
		mcp.WithString("value", mcp.Description("New value; omit to clear the answer")),
		mcp.WithOutputSchema[domain.View](),
	), mcp.NewStructuredToolHandler(s.handleSetAnswer))

	// TOOL: navigate
	s.mcpServer.AddTool(mcp.NewTool("navigate",
		mcp.WithDescription("Move between sections. Moves past either end are ignored."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithString("action", mcp.Required(), mcp.Enum(string(domain.MoveNext), string(domain.MoveBack), string(domain.MoveGoTo))),
		mcp.WithNumber("section", mcp.Description("Target section ID for goto")),
		mcp.WithOutputSchema[domain.View](),
	), mcp.NewStructuredToolHandler(s.handleNavigate))

	// TOOL: generate_cover
	s.mcpServer.AddTool(mcp.NewTool("generate_cover",
		mcp.WithDescription("Render the cover page PDF from the project name, submittal date and logo."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session ID")),
	), s.handleGenerate)
}

// Handler methods for structured tools

func (s *Server) handleStart(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.View, error) {
	view, err := s.wizard.Start(ctx)
	if err != nil {
		return domain.View{}, fmt.Errorf("start failed: %w", err)
	}
	s.logger.Debug("MCP session started", "session_id", view.SessionID)
	return view, nil
}

func (s *Server) handleView(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.View, error) {
	id, err := sessionID(args)
	if err != nil {
		return domain.View{}, err
	}
	return s.wizard.View(ctx, id)
}

func (s *Server) handleSetAnswer(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.View, error) {
	id, err := sessionID(args)
	if err != nil {
		return domain.View{}, err
	}
	key, _ := args["key"].(string)
	if key == "" {
		return domain.View{}, errors.New("key is required")
	}

	view, err := s.wizard.SetAnswer(ctx, id, key, decodeValue(args["value"]))
	if err != nil {
		s.logger.Debug("MCP set_answer rejected", "session_id", id, "field", key, "err", err)
		return domain.View{}, err
	}
	return view, nil
}

func (s *Server) handleNavigate(ctx context.Context, request mcp.CallToolRequest, args map[string]any) (domain.View, error) {
	id, err := sessionID(args)
	if err != nil {
		return domain.View{}, err
	}
	action, _ := args["action"].(string)
	move := domain.Move{Action: domain.MoveAction(action)}
	if section, ok := args["section"].(float64); ok {
		move.Section = int(section)
	}
	return s.wizard.Navigate(ctx, id, move)
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id, err := sessionID(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.wizard.Generate(ctx, id)
	if err != nil {
		s.logger.Warn("MCP generate_cover failed", "session_id", id, "err", err)
		return mcp.NewToolResultError(fmt.Sprintf("generate failed: %v", err)), nil
	}

	return mcp.NewToolResultResource(
		fmt.Sprintf("Generated %s (%d bytes)", doc.Filename, len(doc.Data)),
		mcp.BlobResourceContents{
			URI:      coverURI(id),
			MIMEType: doc.MIMEType,
			Blob:     base64.StdEncoding.EncodeToString(doc.Data),
		},
	), nil
}

func (s *Server) registerResources() {
	// EXPOSE: submittals://schema
	s.mcpServer.AddResource(mcp.NewResource(SchemaURI, "Submittal Form Definition",
		mcp.WithMIMEType("application/json"),
	), s.readSchema)
}

func (s *Server) readSchema(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.wizard.Schema().Sections())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      SchemaURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

// -- Helpers --

func sessionID(args map[string]any) (string, error) {
	id, _ := args["session_id"].(string)
	if id == "" {
		return "", errors.New("session_id is required")
	}
	return id, nil
}

func coverURI(sessionID string) string {
	return "submittals://sessions/" + sessionID + "/cover"
}

// decodeValue passes native JSON values through and expands strings holding a
// JSON array, for clients that only send strings.
func decodeValue(raw any) any {
	str, ok := raw.(string)
	if !ok {
		return raw
	}
	trimmed := strings.TrimSpace(str)
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
			return list
		}
	}
	return str
}
