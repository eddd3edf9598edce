package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lolbd307-png/osamendibet25bd/config"
	"github.com/lolbd307-png/osamendibet25bd/database"
	"github.com/lolbd307-png/osamendibet25bd/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("no .env file found, using environment")
	}

	cfg := config.Load()
	database.Connect(cfg)

	app := fiber.New()
	routes.Setup(app, cfg)

	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	logrus.WithField("addr", addr).Info("server starting")

	go func() {
		if err := app.Listen(addr); err != nil {
			logrus.WithError(err).Panic("failed to start server")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logrus.Info("gracefully shutting down")
	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Fatal("server forced to shutdown")
	}
	logrus.Info("server exited cleanly")
}
