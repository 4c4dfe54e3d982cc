// Command setup declares the topic exchange and every queue binding the workers use.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/broker"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}
	cfg.APP.SetupLogging()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := broker.New(cfg.Broker)
	if err != nil {
		logrus.Fatal(err)
	}
	if err := client.Connect(ctx); err != nil {
		logrus.Fatalf("Unable to connect to %s broker: %s", cfg.Broker.Driver, err.Error())
	}
	defer client.Close()

	if err := client.Declare(ctx, models.AllBindings()...); err != nil {
		logrus.Fatalf("Error declaring queues: %s", err.Error())
	}
	for _, binding := range models.AllBindings() {
		logrus.Infof("Queue %s bound to %v on %s", binding.Queue, binding.Patterns, cfg.Broker.Exchange)
	}
}
