package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/aretw0/submittals/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsWizardActivity(t *testing.T) {
	ctx := context.Background()
	m := observability.NewMetrics()

	eng, err := submittals.New(
		submittals.WithRenderer(cover.New(cover.WithCompression(false))),
		submittals.WithLifecycleHooks(m.Hooks()),
	)
	require.NoError(t, err)

	view, err := eng.Start(ctx)
	require.NoError(t, err)
	id := view.SessionID

	_, err = eng.SetAnswer(ctx, id, form.ProjectName, "Acme Tower")
	require.NoError(t, err)
	_, err = eng.Navigate(ctx, id, domain.Move{Action: domain.MoveNext})
	require.NoError(t, err)
	_, err = eng.Generate(ctx, id)
	require.NoError(t, err)

	_, err = eng.Attach(ctx, id, form.Logo, domain.Upload{Name: "logo.png", Data: []byte("junk")})
	require.NoError(t, err)
	_, err = eng.Generate(ctx, id)
	require.ErrorIs(t, err, cover.ErrInvalidImage)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `submittals_section_visits_total{section="intro"} 1`)
	assert.Contains(t, body, `submittals_section_visits_total{section="covered"} 1`)
	assert.Contains(t, body, `submittals_answers_total{field="project_name"} 1`)
	assert.Contains(t, body, `submittals_answers_total{field="logo"} 1`)
	assert.Contains(t, body, `submittals_cover_generations_total{result="ok"} 1`)
	assert.Contains(t, body, `submittals_cover_generations_total{result="error"} 1`)
	assert.Contains(t, body, "submittals_cover_generate_duration_seconds_count 2")
	assert.Contains(t, body, "submittals_cover_size_bytes_count 1")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := observability.NewMetrics()
	b := observability.NewMetrics()

	a.Hooks().OnAnswer(context.Background(), &domain.AnswerEvent{Field: "project_name"})

	assert.NotPanics(t, func() { observability.NewMetrics() })
	count, err := testutil.GatherAndCount(a.Gatherer(), "submittals_answers_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(b.Gatherer(), "submittals_answers_total")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCombine(t *testing.T) {
	var order []string
	first := domain.LifecycleHooks{
		OnAnswer: func(context.Context, *domain.AnswerEvent) { order = append(order, "first") },
	}
	second := domain.LifecycleHooks{
		OnAnswer:   func(context.Context, *domain.AnswerEvent) { order = append(order, "second") },
		OnGenerate: func(context.Context, *domain.GenerateEvent) { order = append(order, "generate") },
	}

	hooks := observability.Combine(first, domain.LifecycleHooks{}, second)
	hooks.OnAnswer(context.Background(), &domain.AnswerEvent{})
	hooks.OnGenerate(context.Background(), &domain.GenerateEvent{})

	assert.Equal(t, []string{"first", "second", "generate"}, order)
	assert.Nil(t, hooks.OnSectionLeave)
	assert.Nil(t, observability.Combine().OnAnswer)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hooks := observability.LogHooks(logger)
	hooks.OnSectionEnter(context.Background(), &domain.SectionEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), SessionID: "s1"},
		SectionKey: form.SectionIntro,
	})
	hooks.OnAnswer(context.Background(), &domain.AnswerEvent{
		EventBase: domain.EventBase{SessionID: "s1"},
		Field:     form.ProjectName,
	})

	out := buf.String()
	assert.Contains(t, out, "msg=section_enter")
	assert.Contains(t, out, "section=intro")
	assert.Contains(t, out, "field=project_name")
	assert.Nil(t, hooks.OnGenerate)
}
