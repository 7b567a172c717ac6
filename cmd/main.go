package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ray-remotestate/foodcourt/config"
	"github.com/ray-remotestate/foodcourt/database"
	"github.com/ray-remotestate/foodcourt/database/dbhelper"
	"github.com/ray-remotestate/foodcourt/handlers"
	"github.com/ray-remotestate/foodcourt/pricing"
	"github.com/ray-remotestate/foodcourt/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load configuration, error: %v", err)
	}

	db, err := database.ConnectAndMigrate(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	users := dbhelper.NewUserStore(db)
	foods := dbhelper.NewFoodStore(db)
	orders := dbhelper.NewOrderStore(db)

	engine := pricing.NewEngine(foods, orders)
	h := handlers.New(users, foods, engine, cfg.SecretKey)
	svr := server.SetupRoutes(h, cfg.SecretKey)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.Infof("server is running on :%s", cfg.Port)
		if err := svr.Run(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server stopped unexpectedly")
		}
	}()

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeout); err != nil {
		logrus.WithError(err).Error("failed to shut down server cleanly")
	}
	if err := db.Close(); err != nil {
		logrus.WithError(err).Error("failed to close database connection")
	}
	logrus.Info("server stopped")
}
