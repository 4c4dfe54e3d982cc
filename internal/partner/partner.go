// Package partner simulates the external grading partner. Each submission schedules a
// delayed asynq task that, when it fires, triggers update.externalGrading as if the
// partner had called back with a result.
package partner

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

const TaskGradingCallback = "partner:grading_callback"

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

type Scheduler struct {
	Client Enqueuer
	Delay  time.Duration
	Queue  string
}

func NewScheduler(client Enqueuer, cfg config.Partner) *Scheduler {
	return &Scheduler{
		Client: client,
		Delay:  cfg.CallbackDelay,
		Queue:  cfg.AsynqQueue,
	}
}

func (s *Scheduler) ScheduleCallback(ctx context.Context, record models.GradingRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error marshalling callback payload: %w", err)
	}

	task := asynq.NewTask(TaskGradingCallback, payload)
	info, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessIn(s.Delay), asynq.Queue(s.Queue))
	if err != nil {
		return fmt.Errorf("enqueue partner callback for grading %s: %w", record.GradingID, err)
	}
	logrus.Infof("Partner callback for grading %s scheduled as task %s in %s", record.GradingID, info.ID, s.Delay)
	return nil
}

func NewServeMux(publisher Publisher) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskGradingCallback, newGradingCallbackHandler(publisher))
	return mux
}

func newGradingCallbackHandler(publisher Publisher) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var record models.GradingRecord
		if err := json.Unmarshal(t.Payload(), &record); err != nil {
			return fmt.Errorf("invalid callback payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := publisher.Publish(ctx, models.UpdateExternalGradingKey, record); err != nil {
			return fmt.Errorf("error publishing %s: %w", models.UpdateExternalGradingKey, err)
		}
		logrus.Infof("Partner callback fired for grading %s", record.GradingID)
		return nil
	}
}

// Start runs the asynq server in the background and returns its shutdown func.
func Start(redisOpt asynq.RedisClientOpt, cfg config.Partner, publisher Publisher) func() {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.AsynqConcurrency,
		Queues:      map[string]int{cfg.AsynqQueue: 1},
	})
	mux := NewServeMux(publisher)
	go func() {
		if err := srv.Run(mux); err != nil {
			logrus.Errorf("Partner callback server stopped: %s", err.Error())
		}
	}()
	return func() {
		srv.Shutdown()
	}
}
