package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/internal/logging"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/ports"
	"github.com/aretw0/submittals/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// multipartOverhead is allowed on top of the upload limit for form framing.
const multipartOverhead = 1 << 20

// Server implements the generated ServerInterface on top of a ports.Wizard.
type Server struct {
	Wizard  ports.Wizard
	Streams *StreamManager

	logger    *slog.Logger
	metrics   http.Handler
	maxUpload int64
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxUploadSize caps multipart bodies. It should match the engine limit.
func WithMaxUploadSize(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxUpload = n
		}
	}
}

// NewHandler creates a new HTTP handler for the wizard.
func NewHandler(wizard ports.Wizard, opts ...Option) http.Handler {
	s := &Server{
		Wizard:    wizard,
		Streams:   NewStreamManager(),
		logger:    logging.NewNop(),
		maxUpload: submittals.DefaultMaxUploadSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	// Swagger UI
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.paramError,
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Submittals API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Custom-Header")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{
		"app":         "submittals-http",
		"version":     strings.TrimSpace(submittals.Version),
		"api_version": apiVersion,
	})
}

// GetOpenAPI serves the embedded API definition.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	spec, err := rawSpec()
	if err != nil {
		s.writeStatus(w, r, http.StatusInternalServerError, "failed to load spec", err)
		return
	}
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(spec)
}

// GetSchema handles the GET /schema request.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string][]schema.Section{
		"sections": s.Wizard.Schema().Sections(),
	})
}

// StartSession handles the POST /sessions request.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	view, err := s.Wizard.Start(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+view.SessionID)
	s.writeJSON(w, r, http.StatusCreated, view)
}

// GetSession handles the GET /sessions/{id} request.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request, id string) {
	view, err := s.Wizard.View(r.Context(), id)
	s.respondView(w, r, view, err)
}

// EndSession handles the DELETE /sessions/{id} request.
func (s *Server) EndSession(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.Wizard.End(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Streams.Close(id)
	w.WriteHeader(http.StatusNoContent)
}

// ResetSession handles the POST /sessions/{id}/reset request.
func (s *Server) ResetSession(w http.ResponseWriter, r *http.Request, id string) {
	view, err := s.Wizard.Reset(r.Context(), id)
	s.respondView(w, r, view, err)
}

// SetAnswer handles the PUT /sessions/{id}/answers/{key} request.
// A null value clears the answer.
func (s *Server) SetAnswer(w http.ResponseWriter, r *http.Request, id string, key string) {
	var body SetAnswerJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeStatus(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	view, err := s.Wizard.SetAnswer(r.Context(), id, key, body.Value)
	s.respondView(w, r, view, err)
}

// AttachFile handles the POST /sessions/{id}/files/{key} request.
// The upload is read from the multipart part named "file".
func (s *Server) AttachFile(w http.ResponseWriter, r *http.Request, id string, key string) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeStatus(w, r, http.StatusRequestEntityTooLarge, "upload too large", err)
			return
		}
		s.writeStatus(w, r, http.StatusBadRequest, "missing multipart file part", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeStatus(w, r, http.StatusBadRequest, "failed to read upload", err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	view, err := s.Wizard.Attach(r.Context(), id, key, domain.Upload{
		Name:        header.Filename,
		ContentType: contentType,
		Data:        data,
	})
	s.respondView(w, r, view, err)
}

// DetachFile handles the DELETE /sessions/{id}/files/{key}/{fileId} request.
func (s *Server) DetachFile(w http.ResponseWriter, r *http.Request, id string, key string, fileId string) {
	view, err := s.Wizard.Detach(r.Context(), id, key, fileId)
	s.respondView(w, r, view, err)
}

// Navigate handles the POST /sessions/{id}/navigate request.
func (s *Server) Navigate(w http.ResponseWriter, r *http.Request, id string) {
	var body NavigateJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeStatus(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	view, err := s.Wizard.Navigate(r.Context(), id, mapMoveToDomain(body))
	s.respondView(w, r, view, err)
}

// GetCover handles the GET /sessions/{id}/cover request.
// With ?inline=1 the PDF is served for in-browser preview.
func (s *Server) GetCover(w http.ResponseWriter, r *http.Request, id string, params GetCoverParams) {
	doc, err := s.Wizard.Generate(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	disposition := "attachment"
	if params.Inline != nil && *params.Inline {
		disposition = "inline"
	}

	w.Header().Set("Content-Type", doc.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	if _, err := w.Write(doc.Data); err != nil {
		s.logger.Warn("cover write failed", "session_id", id, "err", err)
	}
}

// GetGraph handles the GET /sessions/{id}/graph request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request, id string) {
	diagram, err := s.Wizard.Graph(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, diagram)
}

func mapMoveToDomain(m Move) domain.Move {
	move := domain.Move{Action: domain.MoveAction(m.Action)}
	if m.Section != nil {
		move.Section = *m.Section
	}
	return move
}

// paramError reports path or query parameters the router could not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeStatus(w, r, http.StatusBadRequest, err.Error(), err)
}

// respondView writes the view and broadcasts it to the session's subscribers.
func (s *Server) respondView(w http.ResponseWriter, r *http.Request, view domain.View, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if payload, err := json.Marshal(view); err == nil {
		s.Streams.Broadcast(view.SessionID, string(payload))
	}
	s.writeJSON(w, r, http.StatusOK, view)
}

// statusFor maps wizard errors to HTTP status codes.
func statusFor(err error) int {
	var invalid *schema.ValidationError
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, cover.ErrInvalidImage):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFileField),
		errors.Is(err, domain.ErrInvalidMove),
		errors.As(err, &invalid):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	s.writeStatus(w, r, status, msg, err)
}

func (s *Server) writeStatus(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	attrs := []any{
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"request_id", middleware.GetReqID(r.Context()),
		"err", err,
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", attrs...)
	} else {
		s.logger.Debug("request rejected", attrs...)
	}
	s.writeJSON(w, r, status, Error{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "path", r.URL.Path, "err", err)
	}
}
