package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/app"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := app.New("refund-service", cfg)
	if err := myApp.Initialize(ctx); err != nil {
		logrus.Fatalf("Error initializing refund-service: %s", err.Error())
	}
	if err := myApp.InitRefund(); err != nil {
		myApp.Close()
		logrus.Fatalf("Error wiring refund orchestrator: %s", err.Error())
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.Fatalf("refund-service stopped: %s", err.Error())
	}
}
