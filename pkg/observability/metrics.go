package observability

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aretw0/submittals/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "submittals"

// Metrics holds the wizard collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	sectionVisits    *prometheus.CounterVec
	answers          *prometheus.CounterVec
	generations      *prometheus.CounterVec
	generateDuration prometheus.Histogram
	coverBytes       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		gatherer: reg,
		sectionVisits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_visits_total",
			Help:      "Total number of section entries",
		}, []string{"section"}),
		answers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Total number of field edits",
		}, []string{"field"}),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cover_generations_total",
			Help:      "Cover page renders by result",
		}, []string{"result"}),
		generateDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cover_generate_duration_seconds",
			Help:      "Duration of cover page renders",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}),
		coverBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cover_size_bytes",
			Help:      "Size of generated cover pages",
			Buckets:   prometheus.ExponentialBuckets(16<<10, 2, 10),
		}),
	}
	reg.MustRegister(
		m.sectionVisits,
		m.answers,
		m.generations,
		m.generateDuration,
		m.coverBytes,
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.gatherer
}

// Hooks records every lifecycle event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSectionEnter: func(ctx context.Context, e *domain.SectionEvent) {
			m.sectionVisits.WithLabelValues(e.SectionKey).Inc()
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			m.answers.WithLabelValues(e.Field).Inc()
		},
		OnGenerate: func(ctx context.Context, e *domain.GenerateEvent) {
			m.generateDuration.Observe(e.Duration.Seconds())
			if e.IsError {
				m.generations.WithLabelValues("error").Inc()
				return
			}
			m.generations.WithLabelValues("ok").Inc()
			m.coverBytes.Observe(float64(e.Size))
		},
	}
}

// LogHooks writes one structured line per navigation or edit event.
// Renders are already logged by the engine.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSectionEnter: func(ctx context.Context, e *domain.SectionEvent) {
			logger.Debug("section_enter", "session_id", e.SessionID, "section", e.SectionKey)
		},
		OnSectionLeave: func(ctx context.Context, e *domain.SectionEvent) {
			logger.Debug("section_leave", "session_id", e.SessionID, "section", e.SectionKey)
		},
		OnAnswer: func(ctx context.Context, e *domain.AnswerEvent) {
			logger.Debug("answer", "session_id", e.SessionID, "field", e.Field, "kind", e.Kind)
		},
	}
}

// Combine fans each event out to every hook set in order.
func Combine(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		if f := h.OnSectionEnter; f != nil {
			prev := out.OnSectionEnter
			out.OnSectionEnter = func(ctx context.Context, e *domain.SectionEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				f(ctx, e)
			}
		}
		if f := h.OnSectionLeave; f != nil {
			prev := out.OnSectionLeave
			out.OnSectionLeave = func(ctx context.Context, e *domain.SectionEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				f(ctx, e)
			}
		}
		if f := h.OnAnswer; f != nil {
			prev := out.OnAnswer
			out.OnAnswer = func(ctx context.Context, e *domain.AnswerEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				f(ctx, e)
			}
		}
		if f := h.OnGenerate; f != nil {
			prev := out.OnGenerate
			out.OnGenerate = func(ctx context.Context, e *domain.GenerateEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				f(ctx, e)
			}
		}
	}
	return out
}
