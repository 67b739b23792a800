package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/internal/config"
	"github.com/aretw0/submittals/pkg/adapters/redis"
	"github.com/aretw0/submittals/pkg/cover"
	"github.com/aretw0/submittals/pkg/form"
	"github.com/aretw0/submittals/pkg/observability"
	"github.com/aretw0/submittals/pkg/persistence/middleware"
	"github.com/aretw0/submittals/pkg/ports"
)

// Stack is a configured engine plus the resources it owns.
type Stack struct {
	Engine *submittals.Engine

	// Metrics is nil unless metrics are enabled.
	Metrics *observability.Metrics

	closers []func() error
}

// Close releases backend connections.
func (s *Stack) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// NewStack initializes an engine with standard CLI conventions: the
// configured store backend, optional at-rest encryption, the managers list,
// the cover template directory and lifecycle logging.
func NewStack(ctx context.Context, cfg config.Config, logger *slog.Logger, extra ...submittals.Option) (*Stack, error) {
	stack := &Stack{}

	schema, err := form.New(form.Options{Managers: cfg.Managers})
	if err != nil {
		return nil, fmt.Errorf("error building form: %w", err)
	}

	opts := []submittals.Option{
		submittals.WithSchema(schema),
		submittals.WithLogger(logger),
		submittals.WithRenderer(cover.New(cover.WithTemplateDir(cfg.TemplateDir))),
		submittals.WithMaxUploadSize(cfg.MaxUploadSize),
	}

	var store ports.StateStore
	switch cfg.Store {
	case config.StoreRedis:
		prefix := cfg.Redis.Prefix
		if prefix == "" {
			prefix = redis.DefaultPrefix
		}
		rs := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithTTL(cfg.SessionTTL),
			redis.WithPrefix(prefix),
		)
		stack.closers = append(stack.closers, rs.Close)
		if err := rs.Client().Ping(ctx).Err(); err != nil {
			stack.Close()
			return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.Redis.Addr, err)
		}
		store = rs
		opts = append(opts,
			submittals.WithBlobStore(redis.NewBlobStore(rs.Client(), prefix, cfg.SessionTTL)),
			submittals.WithLocker(redis.NewLocker(rs.Client(), prefix)),
		)
		logger.Info("using redis session store", "addr", cfg.Redis.Addr, "prefix", prefix)
	default:
		logger.Debug("using in-memory session store")
	}

	if cfg.EncryptionKey != "" {
		if store == nil {
			logger.Warn("encryption_key ignored for the in-memory store")
		} else {
			key, err := middleware.ParseKey(cfg.EncryptionKey)
			if err != nil {
				stack.Close()
				return nil, fmt.Errorf("error reading encryption key: %w", err)
			}
			mw, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})
			if err != nil {
				stack.Close()
				return nil, err
			}
			store = middleware.Chain(store, mw)
		}
	}
	if store != nil {
		opts = append(opts, submittals.WithStore(store))
	}

	lifecycle := observability.LogHooks(logger)
	if cfg.Metrics {
		stack.Metrics = observability.NewMetrics()
		lifecycle = observability.Combine(lifecycle, stack.Metrics.Hooks())
	}
	opts = append(opts, submittals.WithLifecycleHooks(lifecycle))
	opts = append(opts, extra...)

	engine, err := submittals.New(opts...)
	if err != nil {
		stack.Close()
		return nil, fmt.Errorf("error initializing engine: %w", err)
	}
	stack.Engine = engine
	return stack, nil
}
