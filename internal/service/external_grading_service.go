package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// ExternalGradingService stands in for the grading partner. Submission and the
// partner's result arrive as two independent triggers; state between them lives
// in the store.
type ExternalGradingService struct {
	Store     ExternalGradingStore
	Publisher Publisher
	Scheduler CallbackScheduler
	Grade     func() string
}

func NewExternalGradingService(store ExternalGradingStore, publisher Publisher, scheduler CallbackScheduler) *ExternalGradingService {
	return &ExternalGradingService{
		Store:     store,
		Publisher: publisher,
		Scheduler: scheduler,
		Grade:     RandomPSAGrade,
	}
}

// RandomPSAGrade returns "PSA n" with n in [1, 10].
func RandomPSAGrade() string {
	return fmt.Sprintf("PSA %d", rand.IntN(10)+1)
}

// Submit stores the card as In Progress and reports the new status.
func (s *ExternalGradingService) Submit(ctx context.Context, record models.GradingRecord) error {
	if err := requireGradingID(record); err != nil {
		return err
	}

	record.Status = models.GradingStatusInProgress
	if err := s.Store.Save(ctx, record); err != nil {
		return err
	}

	if err := s.Publisher.Publish(ctx, models.StatusUpdateKey, record); err != nil {
		return fmt.Errorf("error publishing %s: %w", models.StatusUpdateKey, err)
	}
	logrus.Infof("Grading %s submitted to partner", record.GradingID)

	if s.Scheduler != nil {
		if err := s.Scheduler.ScheduleCallback(ctx, record); err != nil {
			logrus.Errorf("Error scheduling partner callback for %s: %v", record.GradingID, err)
		}
	}
	return nil
}

// Complete applies the partner's result to the stored copy. A gradingID that was
// never submitted is an error.
func (s *ExternalGradingService) Complete(ctx context.Context, record models.GradingRecord) error {
	if err := requireGradingID(record); err != nil {
		return err
	}

	stored, err := s.Store.Get(ctx, record.GradingID)
	if err != nil {
		return err
	}

	stored.Result = s.Grade()
	stored.Status = models.GradingStatusGraded
	if err := s.Store.Save(ctx, *stored); err != nil {
		return err
	}

	if err := s.Publisher.Publish(ctx, models.ResultUpdateKey, *stored); err != nil {
		return fmt.Errorf("error publishing %s: %w", models.ResultUpdateKey, err)
	}
	logrus.Infof("Grading %s graded %s", stored.GradingID, stored.Result)
	return nil
}
