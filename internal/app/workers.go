package app

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/client"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/database"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/handler"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/partner"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/repository/posgrest"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/repository/redisstore"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func (a *App) openDB(entities ...interface{}) (*gorm.DB, error) {
	db, err := a.config.DB.GormConnect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(db, entities...); err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		a.onClose(func() { _ = sqlDB.Close() })
	}
	return db, nil
}

// InitGrading wires the grading saga worker and its HTTP gateway.
func (a *App) InitGrading() error {
	db, err := a.openDB(&models.GradingRecord{})
	if err != nil {
		return err
	}
	if a.config.DB.Seed {
		if err := database.SeedGradings(db); err != nil {
			return fmt.Errorf("failed to seed gradings: %w", err)
		}
	}

	a.mountGrading(posgrest.New[models.GradingRecord](db, "grading_id"))
	return nil
}

func (a *App) mountGrading(repo service.GradingRepo) {
	gradingService := service.NewGradingService(repo, a.Broker)
	a.Subscribe(models.GradingBinding, handler.Grading(gradingService).Routes().Dispatch)
	a.RegisterGradingRoutes(handler.Gateway(a.Broker))
}

// InitExternalGrading wires the partner-facing worker. With the callback simulator
// enabled an asynq server on the same Redis fires update.externalGrading later.
func (a *App) InitExternalGrading(ctx context.Context) error {
	rdb, err := a.config.Redis.RedisConnect(ctx)
	if err != nil {
		return err
	}
	a.onClose(func() { _ = rdb.Close() })

	var scheduler service.CallbackScheduler
	if a.config.Partner.Enabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     a.config.Redis.Addr,
			Password: a.config.Redis.Password,
			DB:       a.config.Redis.DB,
		}
		asynqClient := asynq.NewClient(redisOpt)
		a.onClose(func() { _ = asynqClient.Close() })
		a.onClose(partner.Start(redisOpt, a.config.Partner, a.Broker))
		scheduler = partner.NewScheduler(asynqClient, a.config.Partner)
	} else {
		logrus.Info("Partner callback simulator disabled, update.externalGrading must come from outside")
	}

	a.mountExternalGrading(redisstore.NewGradingStore(rdb), scheduler)
	return nil
}

func (a *App) mountExternalGrading(store service.ExternalGradingStore, scheduler service.CallbackScheduler) {
	externalGradingService := service.NewExternalGradingService(store, a.Broker, scheduler)
	a.Subscribe(models.ExternalGradingBinding, handler.ExternalGrading(externalGradingService).Routes().Dispatch)
}

func (a *App) InitDelivery() {
	a.mountDelivery(client.NewCarrierClient(a.config.Collaborators))
}

func (a *App) mountDelivery(carrier service.CarrierClient) {
	collaborators := a.config.Collaborators
	deliveryService := service.NewDeliveryService(carrier, a.Broker, service.Destination{
		AddressLine1: collaborators.ToAddressLine1,
		AddressLine2: collaborators.ToAddressLine2,
		ZipCode:      collaborators.ToZipCode,
	})
	a.Subscribe(models.DeliveryBinding, handler.Delivery(deliveryService).Routes().Dispatch)
}

func (a *App) InitNotification() {
	a.mountNotification(client.NewNotifierClient(a.config.Collaborators))
}

func (a *App) mountNotification(notifier service.Notifier) {
	notificationService := service.NewNotificationService(notifier)
	a.Subscribe(models.NotificationBinding, handler.Notification(notificationService).Handler)
}

// InitRefund wires the refund orchestrator. It has no queue of its own and only publishes.
func (a *App) InitRefund() error {
	db, err := a.openDB(&models.RefundRequest{})
	if err != nil {
		return err
	}

	collaborators := a.config.Collaborators
	refundService := service.NewRefundService(
		client.NewPaymentClient(collaborators),
		client.NewVerificationClient(collaborators),
		posgrest.New[models.RefundRequest](db, "request_id"),
		a.Broker,
		collaborators.PhoneNumber,
	)
	a.RegisterRefundRoutes(handler.Refund(refundService))
	return nil
}
