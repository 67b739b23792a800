package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	eng, err := submittals.New(
		submittals.WithRenderer(cover.New(cover.WithCompression(false))),
		submittals.WithMaxUploadSize(1024),
	)
	require.NoError(t, err)
	return NewHandler(eng, opts...)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func upload(t *testing.T, h http.Handler, path, name string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) domain.View {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var view domain.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func startSession(t *testing.T, h http.Handler) string {
	t.Helper()
	w := do(t, h, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var view domain.View
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.NotEmpty(t, view.SessionID)
	assert.Equal(t, "/sessions/"+view.SessionID, w.Header().Get("Location"))
	return view.SessionID
}

func TestGetSwagger_DescribesRoutes(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	for _, path := range []string{"/sessions", "/sessions/{id}/cover", "/sessions/{id}/files/{key}/{fileId}", "/sessions/{id}/events"} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
	assert.NotNil(t, swagger.Paths.Find("/sessions/{id}/cover").Get.Parameters.GetByInAndName("query", "inline"))

	h := newTestHandler(t)
	w := do(t, h, http.MethodGet, "/openapi.yaml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"operationId":"subscribeEvents"`)

	w = do(t, h, http.MethodGet, "/swagger", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/openapi.yaml")
}

func TestServer_InvalidQueryParameter(t *testing.T) {
	h := newTestHandler(t)
	id := startSession(t, h)

	w := do(t, h, http.MethodGet, "/sessions/"+id+"/cover?inline=sometimes", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inline")
}

func TestServer_HealthInfoSchema(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/info", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"app":"submittals-http"`)
	assert.Contains(t, w.Body.String(), `"api_version":"0.1.0"`)

	w = do(t, h, http.MethodGet, "/schema", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Sections []struct {
			Key string `json:"key"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Sections)
	assert.Equal(t, form.SectionIntro, body.Sections[0].Key)
	assert.Equal(t, form.SectionGenerate, body.Sections[len(body.Sections)-1].Key)

	w = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "metrics are off unless a handler is given")
}

func TestServer_MetricsHandler(t *testing.T) {
	h := newTestHandler(t, WithMetricsHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "submittals_up 1\n")
	})))

	w := do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "submittals_up 1\n", w.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	h := newTestHandler(t)
	w := do(t, h, http.MethodOptions, "/sessions", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_AnswerAndNavigate(t *testing.T) {
	h := newTestHandler(t)
	id := startSession(t, h)

	view := decodeView(t, do(t, h, http.MethodPut, "/sessions/"+id+"/answers/"+form.ProjectName, map[string]any{"value": "Acme Tower"}))
	assert.False(t, view.Section.Complete)

	view = decodeView(t, do(t, h, http.MethodPut, "/sessions/"+id+"/answers/"+form.CoveredSpaces, map[string]any{"value": form.Yes}))
	view = decodeView(t, do(t, h, http.MethodPut, "/sessions/"+id+"/answers/"+form.Systems, map[string]any{"value": []string{form.SystemUMS}}))

	view = decodeView(t, do(t, h, http.MethodPost, "/sessions/"+id+"/navigate", domain.Move{Action: domain.MoveNext}))
	assert.Equal(t, form.SectionCovered, view.Section.Key)
	assert.True(t, view.CanBack)

	view = decodeView(t, do(t, h, http.MethodPost, "/sessions/"+id+"/navigate", domain.Move{Action: domain.MoveGoTo, Section: 99}))
	assert.True(t, view.Section.Terminal)

	view = decodeView(t, do(t, h, http.MethodGet, "/sessions/"+id, nil))
	assert.True(t, view.Section.Terminal)

	view = decodeView(t, do(t, h, http.MethodPost, "/sessions/"+id+"/reset", nil))
	assert.Equal(t, 0, view.Section.ID)
	for _, f := range view.Fields {
		assert.Nil(t, f.Value, f.Key)
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	h := newTestHandler(t)
	id := startSession(t, h)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		raw    string
		want   int
	}{
		{"unknown session", http.MethodGet, "/sessions/missing", nil, "", http.StatusNotFound},
		{"unknown field", http.MethodPut, "/sessions/" + id + "/answers/nope", map[string]any{"value": "x"}, "", http.StatusNotFound},
		{"bad shape", http.MethodPut, "/sessions/" + id + "/answers/" + form.SubmittalDate, map[string]any{"value": "not a date"}, "", http.StatusBadRequest},
		{"file field edit", http.MethodPut, "/sessions/" + id + "/answers/" + form.Logo, map[string]any{"value": "x"}, "", http.StatusBadRequest},
		{"malformed body", http.MethodPut, "/sessions/" + id + "/answers/" + form.ProjectName, nil, "{", http.StatusBadRequest},
		{"invalid move", http.MethodPost, "/sessions/" + id + "/navigate", domain.Move{Action: "sideways"}, "", http.StatusBadRequest},
		{"unknown file", http.MethodDelete, "/sessions/" + id + "/files/" + form.Drawings + "/nope", nil, "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w *httptest.ResponseRecorder
			if tt.raw != "" {
				req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.raw))
				w = httptest.NewRecorder()
				h.ServeHTTP(w, req)
			} else {
				w = do(t, h, tt.method, tt.path, tt.body)
			}
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestServer_FilesAndCover(t *testing.T) {
	h := newTestHandler(t)
	id := startSession(t, h)

	decodeView(t, do(t, h, http.MethodPut, "/sessions/"+id+"/answers/"+form.ProjectName, map[string]any{"value": "Acme Tower"}))

	decodeView(t, upload(t, h, "/sessions/"+id+"/files/"+form.Drawings, "level1.pdf", []byte("%PDF-1.4")))

	// Views only carry the fields of the active section.
	w := do(t, h, http.MethodPost, "/sessions/"+id+"/navigate", domain.Move{Action: domain.MoveGoTo, Section: 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var raw struct {
		Section domain.SectionView `json:"section"`
		Fields  []struct {
			Key   string           `json:"key"`
			Value []domain.FileRef `json:"value"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Equal(t, form.SectionDrawings, raw.Section.Key)

	var drawings []domain.FileRef
	for _, f := range raw.Fields {
		if f.Key == form.Drawings {
			drawings = f.Value
		}
	}
	require.Len(t, drawings, 1)
	assert.Equal(t, "level1.pdf", drawings[0].Name)
	assert.Equal(t, int64(8), drawings[0].Size)

	decodeView(t, do(t, h, http.MethodDelete, "/sessions/"+id+"/files/"+form.Drawings+"/"+drawings[0].ID, nil))

	w = upload(t, h, "/sessions/"+id+"/files/"+form.Drawings, "huge.pdf", make([]byte, 4096))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = upload(t, h, "/sessions/"+id+"/files/"+form.Logo, "logo.png", []byte("not an image"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(t, h, http.MethodGet, "/sessions/"+id+"/cover", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	var logo bytes.Buffer
	require.NoError(t, png.Encode(&logo, image.NewGray(image.Rect(0, 0, 8, 4))))
	w = upload(t, h, "/sessions/"+id+"/files/"+form.Logo, "logo.png", logo.Bytes())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, h, http.MethodGet, "/sessions/"+id+"/cover", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, cover.MIMEType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="submittal-cover.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	assert.Contains(t, w.Body.String(), "(Acme Tower) Tj")

	w = do(t, h, http.MethodGet, "/sessions/"+id+"/cover?inline=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "inline;"))
}

func TestServer_GraphAndEnd(t *testing.T) {
	h := newTestHandler(t)
	id := startSession(t, h)

	w := do(t, h, http.MethodGet, "/sessions/"+id+"/graph", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "graph TD"), w.Body.String())
	assert.Contains(t, w.Body.String(), "class ")

	w = do(t, h, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, h, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(t, h, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_SubscribeEvents(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	id := startSession(t, h)

	resp, err := http.Get(srv.URL + "/sessions/" + id + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	next := func() string {
		select {
		case l, ok := <-lines:
			require.True(t, ok, "stream closed early")
			return l
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for event")
		}
		return ""
	}

	assert.Equal(t, "event: ping", next())
	assert.Equal(t, "data: connected", next())
	assert.Equal(t, "", next())

	decodeView(t, do(t, h, http.MethodPut, "/sessions/"+id+"/answers/"+form.ProjectName, map[string]any{"value": "Acme Tower"}))

	assert.Equal(t, "event: view", next())
	data := next()
	require.True(t, strings.HasPrefix(data, "data: "), data)
	var view domain.View
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(data, "data: ")), &view))
	assert.Equal(t, id, view.SessionID)
	assert.Equal(t, "", next())

	w := do(t, h, http.MethodDelete, "/sessions/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "event: end", next())
}

func TestServer_SubscribeEventsUnknownSession(t *testing.T) {
	h := newTestHandler(t)
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sessions/missing/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStreamManager_CancelAfterClose(t *testing.T) {
	sm := NewStreamManager()
	ch, cancel := sm.Subscribe("s1")
	assert.Equal(t, 1, sm.Subscribers("s1"))

	sm.Close("s1")
	_, ok := <-ch
	assert.False(t, ok)
	assert.Equal(t, 0, sm.Subscribers("s1"))

	assert.NotPanics(t, cancel)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(domain.ErrSessionNotFound))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFor(domain.ErrFileTooLarge))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(cover.ErrInvalidImage))
	assert.Equal(t, http.StatusInternalServerError, statusFor(cover.ErrMissingTemplate))
	assert.Equal(t, http.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
}
