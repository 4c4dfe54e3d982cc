package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	kafka "github.com/segmentio/kafka-go"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// KafkaClient emulates the topic exchange on a single Kafka topic named after it.
// The routing key travels as the message key and a header; every queue is a consumer
// group that filters keys against its binding patterns.
type KafkaClient struct {
	Brokers     []string
	Topic       string
	RetryConfig config.RetryConfig
	attempts    int

	mu     sync.Mutex
	writer *kafka.Writer
}

func NewKafkaClient(cfg config.Broker) *KafkaClient {
	attempts := cfg.ConnectAttempts
	if attempts <= 0 {
		attempts = 5
	}
	return &KafkaClient{
		Brokers:     splitBrokers(cfg.KafkaBrokers),
		Topic:       cfg.Exchange,
		RetryConfig: withDefaults(cfg.GetRetryConfig()),
		attempts:    attempts,
	}
}

func (k *KafkaClient) Connect(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.connectLocked(ctx)
}

func (k *KafkaClient) connectLocked(ctx context.Context) error {
	if len(k.Brokers) == 0 {
		return &ConnectionError{Addr: "", Attempts: 0, Err: errors.New("no kafka brokers configured")}
	}

	var lastErr error
	for attempt := 0; attempt < k.attempts; attempt++ {
		conn, err := kafka.DialContext(ctx, "tcp", k.Brokers[0])
		if err == nil {
			conn.Close()
			k.writer = &kafka.Writer{
				Addr:                   kafka.TCP(k.Brokers...),
				Topic:                  k.Topic,
				Balancer:               &kafka.Hash{},
				AllowAutoTopicCreation: true,
			}
			logrus.Infof("Connected to kafka %s, topic %s", strings.Join(k.Brokers, ","), k.Topic)
			return nil
		}
		lastErr = err

		if attempt == k.attempts-1 {
			break
		}
		delay := calculateBackoff(k.RetryConfig, attempt)
		logrus.Warnf("Kafka connect attempt %d/%d failed: %v. Retrying in %v", attempt+1, k.attempts, err, delay)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during connect: %w", ctx.Err())
		}
	}
	return &ConnectionError{Addr: k.Brokers[0], Attempts: k.attempts, Err: lastErr}
}

func (k *KafkaClient) IsOpen() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.writer != nil
}

func (k *KafkaClient) Publish(ctx context.Context, routingKey string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	k.mu.Lock()
	if k.writer == nil {
		logrus.Warnf("Kafka writer is closed, reconnecting before publishing %s", routingKey)
		metrics.Reconnects.WithLabelValues(DriverKafka).Inc()
		if err := k.connectLocked(ctx); err != nil {
			k.mu.Unlock()
			metrics.PublishFailures.WithLabelValues(routingKey).Inc()
			return err
		}
	}
	writer := k.writer
	k.mu.Unlock()

	headers := []kafka.Header{{Key: RoutingKeyHeader, Value: []byte(routingKey)}}
	for key, value := range injectTrace(ctx) {
		headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	msg := kafka.Message{
		Key:     []byte(routingKey),
		Value:   data,
		Headers: headers,
	}

	if err := k.publishWithRetry(ctx, writer, msg, routingKey); err != nil {
		metrics.PublishFailures.WithLabelValues(routingKey).Inc()
		return err
	}
	metrics.MessagesPublished.WithLabelValues(routingKey).Inc()
	return nil
}

func (k *KafkaClient) publishWithRetry(ctx context.Context, writer *kafka.Writer, msg kafka.Message, routingKey string) error {
	var lastErr error

	for attempt := 0; attempt < k.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.Infof("Message %s published to topic '%s' after %d attempts", routingKey, k.Topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == k.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := calculateBackoff(k.RetryConfig, attempt)
		logrus.Warnf("Retry %d/%d for %s after %v: %v", attempt+1, k.RetryConfig.MaxAttempts, routingKey, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish %s to topic '%s' after %d attempts: %w",
		routingKey, k.Topic, k.RetryConfig.MaxAttempts, lastErr)
}

// Declare is a no-op: the topic is created on first write and consumer groups on first read.
func (k *KafkaClient) Declare(_ context.Context, bindings ...models.QueueBinding) error {
	for _, b := range bindings {
		logrus.Infof("Queue %s maps to consumer group %s on topic %s", b.Queue, b.Queue, k.Topic)
	}
	return nil
}

func (k *KafkaClient) Consume(ctx context.Context, binding models.QueueBinding, handler Handler) error {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  k.Brokers,
		GroupID:  binding.Queue,
		Topic:    k.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	logrus.Infof("Waiting for messages on consumer group %s", binding.Queue)
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logrus.Errorf("Kafka error: %v", err)
			select {
			case <-time.After(k.RetryConfig.BaseDelay):
			case <-ctx.Done():
				return nil
			}
			continue
		}

		routingKey, headers := kafkaHeaders(msg)
		if !MatchesAny(binding.Patterns, routingKey) {
			continue
		}
		if err := handler(extractTrace(ctx, headers), routingKey, msg.Value); err != nil {
			logrus.Errorf("Handler returned error for %s: %v", routingKey, err)
		}
	}
}

func kafkaHeaders(msg kafka.Message) (string, map[string]string) {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	routingKey, ok := headers[RoutingKeyHeader]
	if !ok {
		routingKey = string(msg.Key)
	}
	return routingKey, headers
}

func (k *KafkaClient) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.writer == nil {
		return nil
	}
	err := k.writer.Close()
	k.writer = nil
	return err
}
