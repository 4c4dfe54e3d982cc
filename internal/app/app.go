package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/broker"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/observability"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type subscription struct {
	consumer *broker.Consumer
	handler  broker.Handler
}

// App is one worker binary: a broker connection, its queue subscriptions and a gin router.
type App struct {
	Name   string
	config *config.Config
	Router *gin.Engine
	Broker broker.Client

	subscriptions []subscription
	closers       []func()
}

func New(name string, cfg *config.Config) *App {
	return &App{Name: name, config: cfg}
}

// Initialize sets up logging, tracing and metrics and connects to the broker.
func (a *App) Initialize(ctx context.Context) error {
	a.config.APP.SetupLogging()

	shutdown, err := observability.SetupTracingSDK(ctx, a.Name, a.config.Otel)
	if err != nil {
		logrus.Warnf("Tracing disabled: %s", err.Error())
	}
	a.onClose(func() {
		if err := shutdown(context.Background()); err != nil {
			logrus.Errorf("Error shutting down tracer provider: %s", err.Error())
		}
	})

	metrics.RegisterMetrics()

	client, err := broker.New(a.config.Broker)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}
	a.use(client)
	return nil
}

func (a *App) use(client broker.Client) {
	a.Broker = client
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes()
}

// Subscribe attaches handler to binding. Consumption starts in Run.
func (a *App) Subscribe(binding models.QueueBinding, handler broker.Handler) {
	consumer := broker.NewConsumer(a.Broker, binding, a.config.Broker.GetRetryConfig(), a.config.Broker.DeadLetter)
	a.subscriptions = append(a.subscriptions, subscription{consumer: consumer, handler: handler})
}

func (a *App) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Run declares every subscribed queue, starts one consumer goroutine per queue and
// serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	for _, sub := range a.subscriptions {
		if err := a.Broker.Declare(ctx, sub.consumer.Binding); err != nil {
			return fmt.Errorf("declare %s: %w", sub.consumer.Binding.Queue, err)
		}
		go func(sub subscription) {
			if err := sub.consumer.Listen(ctx, sub.handler); err != nil && ctx.Err() == nil {
				logrus.Errorf("Consumer for %s stopped: %s", sub.consumer.Binding.Queue, err.Error())
			}
		}(sub)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.Errorf("Error shutting down http server: %s", err.Error())
		}
	}()

	logrus.Infof("%s listening on %s", a.Name, srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases everything Initialize and the Init* functions opened, newest first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	if a.Broker != nil {
		if err := a.Broker.Close(); err != nil {
			logrus.Errorf("Error closing broker: %s", err.Error())
		}
	}
}
