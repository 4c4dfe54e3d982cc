package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
)

// Handler receives one delivery. Drivers acknowledge the message after it returns.
type Handler func(ctx context.Context, routingKey string, body []byte) error

// Client is a connection to the topic exchange shared by every saga worker.
type Client interface {
	Connect(ctx context.Context) error
	IsOpen() bool
	// Publish reconnects first when the handle is stale, then sends message as JSON.
	Publish(ctx context.Context, routingKey string, message interface{}) error
	// Declare creates the durable queues and their bindings.
	Declare(ctx context.Context, bindings ...models.QueueBinding) error
	// Consume blocks, handing deliveries for binding to handler one at a time until ctx is done.
	Consume(ctx context.Context, binding models.QueueBinding, handler Handler) error
	Close() error
}

const (
	DriverAMQP   = "amqp"
	DriverKafka  = "kafka"
	DriverMemory = "memory"
)

func New(cfg config.Broker) (Client, error) {
	switch cfg.Driver {
	case DriverAMQP, "":
		return NewAMQPClient(cfg), nil
	case DriverKafka:
		return NewKafkaClient(cfg), nil
	case DriverMemory:
		return NewMemoryBroker(), nil
	default:
		return nil, fmt.Errorf("unknown broker driver %q", cfg.Driver)
	}
}

// ConnectionError is returned once every connect attempt has failed.
type ConnectionError struct {
	Addr     string
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("unable to connect to broker %s after %d attempts: %v", e.Addr, e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func splitBrokers(list string) []string {
	var brokers []string
	for _, b := range strings.Split(list, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
