// Package app wires one console process: configuration in, a Context with
// the API client, session, notifier and logger out.
package app

import (
	"context"
	"errors"
	"net/http"

	"delivery-console/config"
	"delivery-console/internal/apiclient"
	"delivery-console/internal/notify"
	"delivery-console/internal/session"
	"delivery-console/internal/storage"

	"go.uber.org/zap"
)

// Context is the per-application state every container and handler is
// given explicitly.
type Context struct {
	Name    session.App
	Config  *config.Config
	API     *apiclient.Client
	Session *session.Store
	Notify  *notify.Bus
	Logger  *zap.Logger

	closers []func() error
}

type Option func(*options)

type options struct {
	httpClient apiclient.HTTPClient
	backend    session.Backend
	sink       notify.Sink
}

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(client apiclient.HTTPClient) Option {
	return func(o *options) { o.httpClient = client }
}

// WithSessionBackend replaces the redis or in-memory credential backend.
func WithSessionBackend(backend session.Backend) Option {
	return func(o *options) { o.backend = backend }
}

func WithSink(sink notify.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// New builds the context for cfg.App. Redis backs the session when
// cfg.RedisAddr is set, memory otherwise; toasts go to kafka when
// cfg.KafkaBroker is set.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*Context, error) {
	name, err := session.ParseApp(cfg.App)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("app", string(name)))

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{Name: name, Config: cfg, Logger: logger}

	if o.backend == nil {
		if cfg.RedisAddr != "" {
			client, err := config.InitRedis(cfg.RedisAddr)
			if err != nil {
				return nil, err
			}
			c.closers = append(c.closers, client.Close)
			o.backend = storage.NewRedisSessions(client, name, cfg.SessionTTL)
		} else {
			o.backend = session.NewMemoryBackend()
		}
	}
	c.Session = session.New(o.backend, name)

	if o.sink == nil && cfg.KafkaBroker != "" {
		sink := storage.NewKafkaSink(config.NewKafkaWriter(cfg.KafkaBroker, cfg.NotificationTopic), string(name))
		c.closers = append(c.closers, sink.Close)
		o.sink = sink
	}
	busOpts := []notify.Option{notify.WithDefaultDuration(cfg.NotificationDuration)}
	if o.sink != nil {
		busOpts = append(busOpts, notify.WithSink(o.sink))
	}
	c.Notify = notify.NewBus(logger.Named("notify"), busOpts...)

	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	c.API = apiclient.NewClient(apiclient.Config{
		AuthSvcURL:    cfg.AuthSvcURL,
		CatalogSvcURL: cfg.CatalogSvcURL,
		OrderSvcURL:   cfg.OrderSvcURL,
	}, o.httpClient, c.Session, logger.Named("api"))
	c.API.OnUnauthorized(func() {
		logger.Info("session expired, login required")
	})

	return c, nil
}

// OnClose registers fn to run on Close, before the built-in closers.
func (c *Context) OnClose(fn func() error) {
	c.closers = append([]func() error{fn}, c.closers...)
}

// Close stops toast timers, then releases kafka and redis.
func (c *Context) Close() error {
	c.Notify.Close()
	var errs []error
	for _, closer := range c.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ping checks the credential backend.
func (c *Context) Ping(ctx context.Context) error {
	_, err := c.Session.Token(ctx)
	return err
}
