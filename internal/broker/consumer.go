package broker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/setsunaxe7/pokemart-fulfillment/internal/broker")

// Consumer drives a handler over one queue. Transient failures are retried with
// backoff; permanent ones are dropped. Once retries run out the message is
// published on its dead letter key when DeadLetter is set.
type Consumer struct {
	Client      Client
	Binding     models.QueueBinding
	RetryConfig config.RetryConfig
	DeadLetter  bool
}

func NewConsumer(client Client, binding models.QueueBinding, retryConfig config.RetryConfig, deadLetter bool) *Consumer {
	return &Consumer{
		Client:      client,
		Binding:     binding,
		RetryConfig: withDefaults(retryConfig),
		DeadLetter:  deadLetter,
	}
}

// Listen blocks until ctx is done. Drivers reconnect on their own.
func (c *Consumer) Listen(ctx context.Context, handler Handler) error {
	logrus.Infof("Listening on queue %s bound to %v", c.Binding.Queue, c.Binding.Patterns)
	return c.Client.Consume(ctx, c.Binding, func(ctx context.Context, routingKey string, body []byte) error {
		c.ProcessMessage(ctx, routingKey, body, handler)
		return nil
	})
}

func (c *Consumer) ProcessMessage(ctx context.Context, routingKey string, body []byte, handler Handler) {
	queue := c.Binding.Queue
	metrics.MessagesConsumed.WithLabelValues(queue, routingKey).Inc()
	timer := prometheus.NewTimer(metrics.HandlerDuration.WithLabelValues(queue))
	defer timer.ObserveDuration()

	ctx, span := tracer.Start(ctx, "consume "+routingKey,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", queue),
			attribute.String("messaging.rabbitmq.destination.routing_key", routingKey),
		),
	)
	defer span.End()

	log := logrus.WithFields(logrus.Fields{"queue": queue, "routing_key": routingKey})

	var lastErr error
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, routingKey, body)
		if err == nil {
			return
		}

		if errorx.IsPermanent(err) {
			log.Warnf("Dropping message: %v", err)
			metrics.MessagesDropped.WithLabelValues(queue, "permanent").Inc()
			span.RecordError(err)
			return
		}

		lastErr = err
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := calculateBackoff(c.RetryConfig, attempt)
		log.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		metrics.MessagesRetried.WithLabelValues(queue).Inc()

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, "retries exhausted")
	log.Errorf("Message failed after %d attempts: %v", c.RetryConfig.MaxAttempts, lastErr)

	if !c.DeadLetter {
		metrics.MessagesDropped.WithLabelValues(queue, "exhausted").Inc()
		return
	}

	deadLetter := models.DeadLetter{
		OriginalRoutingKey: routingKey,
		Queue:              queue,
		Body:               string(body),
		Error:              lastErr.Error(),
		Timestamp:          time.Now().UTC(),
		Attempts:           c.RetryConfig.MaxAttempts,
	}
	key := models.DeadLetterKey(routingKey)
	if err := c.Client.Publish(ctx, key, deadLetter); err != nil {
		log.Errorf("Failed to send message to dead letter: %v", err)
		return
	}
	metrics.DeadLettered.WithLabelValues(queue).Inc()
	log.Infof("Message sent to %s", key)
}
