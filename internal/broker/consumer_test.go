package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(attempts int) config.RetryConfig {
	return config.RetryConfig{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestConsumer_SuccessOnFirstAttempt(t *testing.T) {
	b := NewMemoryBroker()
	c := NewConsumer(b, models.DeliveryBinding, fastRetry(3), true)

	calls := 0
	c.ProcessMessage(context.Background(), "create.delivery", []byte(`{}`), func(context.Context, string, []byte) error {
		calls++
		return nil
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, b.Published())
}

func TestConsumer_RetriesTransientErrorThenSucceeds(t *testing.T) {
	b := NewMemoryBroker()
	c := NewConsumer(b, models.DeliveryBinding, fastRetry(3), true)

	calls := 0
	c.ProcessMessage(context.Background(), "create.delivery", []byte(`{}`), func(context.Context, string, []byte) error {
		calls++
		if calls < 3 {
			return errors.New("carrier unavailable")
		}
		return nil
	})

	assert.Equal(t, 3, calls)
	assert.Empty(t, b.Published())
}

func TestConsumer_DeadLettersAfterRetriesExhausted(t *testing.T) {
	b := NewMemoryBroker()
	c := NewConsumer(b, models.DeliveryBinding, fastRetry(2), true)

	calls := 0
	c.ProcessMessage(context.Background(), "create.delivery", []byte(`{"gradingID":"G1"}`), func(context.Context, string, []byte) error {
		calls++
		return fmt.Errorf("%w: status 503", errorx.ErrCollaborator)
	})

	assert.Equal(t, 2, calls)
	bodies := b.PublishedTo("create.deadletter")
	require.Len(t, bodies, 1)

	var dl models.DeadLetter
	require.NoError(t, json.Unmarshal(bodies[0], &dl))
	assert.Equal(t, "create.delivery", dl.OriginalRoutingKey)
	assert.Equal(t, models.DeliveryQueue, dl.Queue)
	assert.Equal(t, `{"gradingID":"G1"}`, dl.Body)
	assert.Equal(t, 2, dl.Attempts)
	assert.Contains(t, dl.Error, "status 503")
}

func TestConsumer_NoDeadLetterWhenDisabled(t *testing.T) {
	b := NewMemoryBroker()
	c := NewConsumer(b, models.NotificationBinding, fastRetry(2), false)

	c.ProcessMessage(context.Background(), "grading.notify", []byte(`{}`), func(context.Context, string, []byte) error {
		return errors.New("boom")
	})

	assert.Empty(t, b.Published())
}

func TestConsumer_DropsPermanentErrorsWithoutRetry(t *testing.T) {
	b := NewMemoryBroker()
	c := NewConsumer(b, models.GradingBinding, fastRetry(5), true)

	calls := 0
	c.ProcessMessage(context.Background(), "create.grading", []byte(`not json`), func(context.Context, string, []byte) error {
		calls++
		return fmt.Errorf("%w: unexpected token", errorx.ErrMalformedMessage)
	})

	assert.Equal(t, 1, calls)
	assert.Empty(t, b.Published())
}

func TestConsumer_ListenDeliversThroughBroker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := NewMemoryBroker()
	c := NewConsumer(b, models.ExternalGradingBinding, fastRetry(1), true)
	require.NoError(t, b.Declare(ctx, c.Binding))

	got := make(chan string, 1)
	go func() {
		_ = c.Listen(ctx, func(_ context.Context, key string, _ []byte) error {
			got <- key
			return nil
		})
	}()

	require.NoError(t, b.Publish(ctx, "create.externalGrading", struct{}{}))

	select {
	case key := <-got:
		assert.Equal(t, "create.externalGrading", key)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}
