package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ride-service/src/internal/config"
	"ride-service/src/internal/delivery/http/middleware"
	"ride-service/src/pkg/log"
)

func main() {
	viperConfig := config.NewViper()
	viperConfig.SetDefault("log.level", "DEBUG")
	viperConfig.SetDefault("app.name", "RIDE_SERVICE")
	viperConfig.SetDefault("web.port", 8080)

	log.InitLogger(viperConfig)
	logger := log.GetLogger()

	config.LoadRedisConfig(viperConfig)
	db := config.NewDatabase(viperConfig, logger)
	redisClient := config.NewRedis()
	producer := config.NewKafkaProducer(viperConfig, logger)
	validate := config.NewValidator(viperConfig)
	app := config.NewFiber(viperConfig)
	app.Use(middleware.NewLogger())

	config.Bootstrap(&config.BootstrapConfig{
		DB:       db,
		App:      app,
		Log:      logger,
		Validate: validate,
		Config:   viperConfig,
		Producer: producer,
		Redis:    redisClient,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("main", "Server ride-service is shutting down...", "graceful", "")

		if err := app.Shutdown(); err != nil {
			logger.Error("main", fmt.Sprintf("Error during shutdown: %v", err), "graceful", "")
		}
		if err := db.Close(); err != nil {
			logger.Error("main", fmt.Sprintf("Error closing database: %v", err), "graceful", "")
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				logger.Error("main", fmt.Sprintf("Error closing kafka producer: %v", err), "graceful", "")
			}
		}
	}()

	webPort := viperConfig.GetInt("web.port")
	if err := app.Listen(fmt.Sprintf(":%d", webPort)); err != nil {
		logger.Error("main", fmt.Sprintf("Failed to start server: %v", err), "main", "")
	}

	logger.Info("main", fmt.Sprintf("Server %s stopped", viperConfig.GetString("app.name")), "graceful", "")
}
