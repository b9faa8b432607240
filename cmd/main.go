package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/celestiaorg/jobtracker/config"
	"github.com/celestiaorg/jobtracker/internal/app"
	"github.com/celestiaorg/jobtracker/internal/constants"
	"github.com/celestiaorg/jobtracker/internal/db"
	"github.com/celestiaorg/jobtracker/internal/logger"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()
	logger.InitializeAndConfigure()

	sslEnabled := config.GetEnvBool(constants.EnvDBSSLEnabled, db.DefaultSSLEnabled)
	database, err := db.New(db.Options{
		Host:       config.GetEnv(constants.EnvDBHost, db.DefaultHost),
		Port:       config.GetEnvInt(constants.EnvDBPort, db.DefaultPort),
		User:       config.GetEnv(constants.EnvDBUser, db.DefaultUser),
		Password:   config.GetEnv(constants.EnvDBPassword, db.DefaultPassword),
		DBName:     config.GetEnv(constants.EnvDBName, db.DefaultDBName),
		SSLEnabled: &sslEnabled,
	})
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}

	server := app.NewApp(database)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	port := config.GetEnv(constants.EnvServerPort, routes.DefaultPort)
	go func() {
		logger.Infof("jobs API listening on :%s", port)
		if err := server.Listen(fmt.Sprintf(":%s", port)); err != nil {
			logger.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
