package config

import (
	"ride-service/src/internal/delivery/http"
	"ride-service/src/internal/delivery/http/route"
	"ride-service/src/internal/gateway/cache"
	"ride-service/src/internal/gateway/messaging"
	"ride-service/src/internal/pricing"
	"ride-service/src/internal/repository"
	"ride-service/src/internal/usecase"
	"ride-service/src/pkg/databases/mysql"
	"ride-service/src/pkg/kafka"
	"ride-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB       mysql.DBInterface
	App      *fiber.App
	Log      log.Log
	Validate *validator.Validate
	Config   *viper.Viper
	Producer kafka.Producer
	Redis    redis.UniversalClient
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	rideRepository := repository.NewRideRepository(config.DB)
	rideViewRepository := repository.NewRideViewRepository(config.DB)
	rideCache := cache.NewRideCache(config.Redis, config.Log)

	var rideProducer usecase.RideEventPublisher
	if config.Producer != nil {
		rideProducer = messaging.NewRideProducer(config.Producer, config.Log)
	}

	// setup use cases
	rideUseCase := usecase.NewRideUseCase(
		config.Log,
		config.Validate,
		rideRepository,
		rideViewRepository,
		config.Config,
		rideCache,
		rideProducer,
		pricing.NewRandomGenerator(),
	)

	// setup controller
	rideController := http.NewRideController(rideUseCase, config.Log)

	routeConfig := route.RouteConfig{
		App:            config.App,
		RideController: rideController,
	}
	routeConfig.Setup()
}
