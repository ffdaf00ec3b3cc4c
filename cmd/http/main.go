package main

import (
	"context"
	"glucolog-service/internal/app/config"
	"glucolog-service/internal/app/delivery/http/middlewares"
	"glucolog-service/internal/app/delivery/http/routers"
	"glucolog-service/internal/app/drivers/database"
	"glucolog-service/internal/app/drivers/logger"
	"glucolog-service/internal/app/services/fhir"
	"glucolog-service/internal/app/services/measurements"
	sharedRedis "glucolog-service/internal/app/services/shared/redis"
	"glucolog-service/internal/app/services/users"
	"glucolog-service/internal/pkg/formdata"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()
	log.Info("Server started", zap.String("port", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	bootstrap.Router.Use(appMiddlewares.Logging(bootstrap.Logger))

	requestLog := logger.NewRequestLogger(bootstrap.InternalConfig)
	bootstrap.Router.Use(appMiddlewares.RequestLogger(bootstrap.InternalConfig.App, requestLog))

	// Form decoding
	extractor := formdata.NewExtractor(bootstrap.Logger)

	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)

	// Measurement
	measurementMongoRepository := measurements.NewMeasurementMongoRepository(mongoDatabase, bootstrap.Logger)
	measurementUsecase := measurements.NewMeasurementUsecase(measurementMongoRepository, extractor, bootstrap.Logger)
	measurementController := measurements.NewMeasurementController(bootstrap.Logger, measurementUsecase)

	// FHIR
	fhirClient := fhir.NewFhirClient(bootstrap.InternalConfig)
	fhirUsecase := fhir.NewFhirUsecase(
		measurementMongoRepository,
		fhirClient,
		redisRepository,
		extractor,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	fhirController := fhir.NewFhirController(bootstrap.Logger, fhirUsecase)

	// User
	userMongoRepository := users.NewUserMongoRepository(mongoDatabase, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userMongoRepository, extractor, bootstrap.Logger)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		measurementController,
		fhirController,
		userController,
	)
}
