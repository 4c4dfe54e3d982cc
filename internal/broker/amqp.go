package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

var errDeliveriesClosed = errors.New("delivery channel closed")

// AMQPClient publishes to and consumes from a RabbitMQ topic exchange.
// Publishing shares one connection; every Consume call owns its own.
type AMQPClient struct {
	url          string
	host         string
	exchange     string
	exchangeType string
	attempts     int
	retryConfig  config.RetryConfig

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPClient(cfg config.Broker) *AMQPClient {
	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 5
	}
	exchangeType := cfg.ExchangeType
	if exchangeType == "" {
		exchangeType = amqp.ExchangeTopic
	}
	return &AMQPClient{
		url:          cfg.AMQPURL(),
		host:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		exchange:     cfg.Exchange,
		exchangeType: exchangeType,
		attempts:     attempts,
		retryConfig:  withDefaults(cfg.GetRetryConfig()),
	}
}

func (c *AMQPClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, ch, err := c.dial(ctx)
	if err != nil {
		return err
	}
	c.conn, c.ch = conn, ch
	logrus.Infof("Connected to broker %s, exchange %s (%s)", c.host, c.exchange, c.exchangeType)
	return nil
}

func (c *AMQPClient) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpenLocked()
}

func (c *AMQPClient) isOpenLocked() bool {
	return c.conn != nil && !c.conn.IsClosed() && c.ch != nil && !c.ch.IsClosed()
}

func (c *AMQPClient) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isOpenLocked() {
		logrus.Warnf("Broker handle is closed, reconnecting before publishing %s", routingKey)
		metrics.Reconnects.WithLabelValues(DriverAMQP).Inc()
		c.closeLocked()
		conn, ch, err := c.dial(ctx)
		if err != nil {
			metrics.PublishFailures.WithLabelValues(routingKey).Inc()
			return err
		}
		c.conn, c.ch = conn, ch
	}

	headers := amqp.Table{}
	for k, v := range injectTrace(ctx) {
		headers[k] = v
	}

	err = c.ch.PublishWithContext(ctx, c.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         body,
	})
	if err != nil {
		metrics.PublishFailures.WithLabelValues(routingKey).Inc()
		return fmt.Errorf("error publishing to %s: %w", routingKey, err)
	}
	metrics.MessagesPublished.WithLabelValues(routingKey).Inc()
	logrus.Debugf("Published %s to exchange %s", routingKey, c.exchange)
	return nil
}

func (c *AMQPClient) Declare(ctx context.Context, bindings ...models.QueueBinding) error {
	conn, ch, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer ch.Close()

	for _, b := range bindings {
		if err := c.declareQueue(ch, b); err != nil {
			return err
		}
		logrus.Infof("Declared queue %s bound to %v", b.Queue, b.Patterns)
	}
	return nil
}

func (c *AMQPClient) declareQueue(ch *amqp.Channel, binding models.QueueBinding) error {
	q, err := ch.QueueDeclare(binding.Queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("error declaring queue %s: %w", binding.Queue, err)
	}
	for _, pattern := range binding.Patterns {
		if err := ch.QueueBind(q.Name, pattern, c.exchange, false, nil); err != nil {
			return fmt.Errorf("error binding queue %s to %s: %w", q.Name, pattern, err)
		}
	}
	return nil
}

// Consume keeps a consumer alive across broker restarts until ctx is done.
func (c *AMQPClient) Consume(ctx context.Context, binding models.QueueBinding, handler Handler) error {
	outages := 0
	for {
		err := c.consumeOnce(ctx, binding, handler)
		if ctx.Err() != nil {
			return nil
		}

		delay := c.retryConfig.BaseDelay
		var connErr *ConnectionError
		if errors.As(err, &connErr) {
			delay = calculateBackoff(c.retryConfig, outages)
			outages++
			logrus.Errorf("Broker unreachable for queue %s: %v, retrying in %v", binding.Queue, err, delay)
		} else {
			outages = 0
			logrus.Errorf("Consumer for queue %s stopped: %v, reconnecting", binding.Queue, err)
		}
		metrics.Reconnects.WithLabelValues(DriverAMQP).Inc()

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *AMQPClient) consumeOnce(ctx context.Context, binding models.QueueBinding, handler Handler) error {
	conn, ch, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("error setting prefetch: %w", err)
	}
	if err := c.declareQueue(ch, binding); err != nil {
		return err
	}

	deliveries, err := ch.Consume(binding.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("error consuming from %s: %w", binding.Queue, err)
	}
	logrus.Infof("Waiting for messages on queue %s", binding.Queue)

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			msgCtx := extractTrace(ctx, tableToHeaders(d.Headers))
			if err := handler(msgCtx, d.RoutingKey, d.Body); err != nil {
				logrus.Errorf("Handler returned error for %s: %v", d.RoutingKey, err)
			}
			if err := d.Ack(false); err != nil {
				logrus.Errorf("Failed to ack %s: %v", d.RoutingKey, err)
			}
		}
	}
}

// dial opens a connection and channel and declares the exchange, retrying with backoff.
func (c *AMQPClient) dial(ctx context.Context) (*amqp.Connection, *amqp.Channel, error) {
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		conn, ch, err := c.dialOnce()
		if err == nil {
			return conn, ch, nil
		}
		lastErr = err

		if attempt == c.attempts-1 {
			break
		}
		delay := calculateBackoff(c.retryConfig, attempt)
		logrus.Warnf("Broker connect attempt %d/%d to %s failed: %v. Retrying in %v", attempt+1, c.attempts, c.host, err, delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, nil, fmt.Errorf("context cancelled during connect: %w", ctx.Err())
		}
	}
	return nil, nil, &ConnectionError{Addr: c.host, Attempts: c.attempts, Err: lastErr}
}

func (c *AMQPClient) dialOnce() (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	if err := ch.ExchangeDeclare(c.exchange, c.exchangeType, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("error declaring exchange %s: %w", c.exchange, err)
	}
	return conn, ch, nil
}

func (c *AMQPClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *AMQPClient) closeLocked() error {
	var err error
	if c.ch != nil && !c.ch.IsClosed() {
		err = c.ch.Close()
	}
	if c.conn != nil && !c.conn.IsClosed() {
		if cerr := c.conn.Close(); cerr != nil {
			err = cerr
		}
	}
	c.ch, c.conn = nil, nil
	return err
}

func tableToHeaders(table amqp.Table) map[string]string {
	headers := make(map[string]string, len(table))
	for k, v := range table {
		if s, ok := v.(string); ok {
			headers[k] = s
		}
	}
	return headers
}
