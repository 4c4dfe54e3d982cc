package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

const memoryQueueSize = 256

// Published is a message recorded by MemoryBroker.
type Published struct {
	RoutingKey string
	Body       []byte
}

type memoryMessage struct {
	routingKey string
	body       []byte
	headers    map[string]string
}

type memoryQueue struct {
	patterns []string
	messages chan memoryMessage
}

// MemoryBroker is an in-process topic exchange. Queues buffer messages from the
// moment they are declared, the way durable queues do.
type MemoryBroker struct {
	mu         sync.Mutex
	open       bool
	reconnects int
	queues     map[string]*memoryQueue
	published  []Published
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{queues: make(map[string]*memoryQueue)}
}

func (m *MemoryBroker) Connect(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	return nil
}

func (m *MemoryBroker) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *MemoryBroker) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	m.mu.Lock()
	if !m.open {
		m.open = true
		m.reconnects++
		metrics.Reconnects.WithLabelValues(DriverMemory).Inc()
	}
	m.published = append(m.published, Published{RoutingKey: routingKey, Body: body})
	var targets []chan memoryMessage
	for _, q := range m.queues {
		if MatchesAny(q.patterns, routingKey) {
			targets = append(targets, q.messages)
		}
	}
	m.mu.Unlock()

	msg := memoryMessage{routingKey: routingKey, body: body, headers: injectTrace(ctx)}
	for _, target := range targets {
		select {
		case target <- msg:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	metrics.MessagesPublished.WithLabelValues(routingKey).Inc()
	return nil
}

func (m *MemoryBroker) Declare(_ context.Context, bindings ...models.QueueBinding) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range bindings {
		m.declareLocked(b)
	}
	return nil
}

func (m *MemoryBroker) declareLocked(binding models.QueueBinding) *memoryQueue {
	q, ok := m.queues[binding.Queue]
	if !ok {
		q = &memoryQueue{messages: make(chan memoryMessage, memoryQueueSize)}
		m.queues[binding.Queue] = q
	}
	for _, p := range binding.Patterns {
		if !slices.Contains(q.patterns, p) {
			q.patterns = append(q.patterns, p)
		}
	}
	return q
}

func (m *MemoryBroker) Consume(ctx context.Context, binding models.QueueBinding, handler Handler) error {
	m.mu.Lock()
	q := m.declareLocked(binding)
	m.mu.Unlock()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-q.messages:
			if err := handler(extractTrace(ctx, msg.headers), msg.routingKey, msg.body); err != nil {
				logrus.Errorf("Handler returned error for %s: %v", msg.routingKey, err)
			}
		}
	}
}

func (m *MemoryBroker) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

// Published returns every message sent so far, in order.
func (m *MemoryBroker) Published() []Published {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Published, len(m.published))
	copy(out, m.published)
	return out
}

// PublishedTo returns the bodies sent with routingKey.
func (m *MemoryBroker) PublishedTo(routingKey string) [][]byte {
	var bodies [][]byte
	for _, p := range m.Published() {
		if p.RoutingKey == routingKey {
			bodies = append(bodies, p.Body)
		}
	}
	return bodies
}

// Reconnects counts publishes that found the handle closed.
func (m *MemoryBroker) Reconnects() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reconnects
}
