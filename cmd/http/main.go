package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"patientor-service/internal/app/config"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/delivery/http/controllers"
	"patientor-service/internal/app/delivery/http/middlewares"
	"patientor-service/internal/app/delivery/http/routers"
	"patientor-service/internal/app/delivery/http/views"
	"patientor-service/internal/app/drivers/database"
	"patientor-service/internal/app/drivers/logger"
	"patientor-service/internal/app/services/core/diagnoses"
	"patientor-service/internal/app/services/core/patients"
	diagnosisClients "patientor-service/internal/app/services/patientor/diagnoses"
	patientClients "patientor-service/internal/app/services/patientor/patients"
	"patientor-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error while initializing zap logger: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig, zapLogger)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server starting",
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Redis
	var redisRepository contracts.RedisRepository
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
	}

	// Backend
	httpClient := &http.Client{
		Timeout: time.Duration(internalConfig.Backend.HTTPTimeoutInSeconds) * time.Second,
	}
	patientClient := patientClients.NewPatientClient(internalConfig.Backend.BaseUrl, httpClient, bootstrap.Logger)
	diagnosisClient := diagnosisClients.NewDiagnosisClient(internalConfig.Backend.BaseUrl, httpClient, bootstrap.Logger)

	// Diagnosis
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(
		diagnosisClient,
		redisRepository,
		time.Duration(internalConfig.Diagnoses.CacheTTLInMinutes)*time.Minute,
		bootstrap.Logger,
	)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientClient, diagnosisUsecase, bootstrap.Logger)

	// Delivery
	renderer := views.NewRenderer(internalConfig.App.EndpointPrefix)
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, renderer, internalConfig)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, renderer, internalConfig)
	healthController := controllers.NewHealthController(bootstrap.Logger, bootstrap.Redis, internalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.Logger, internalConfig, middlewares, patientController, healthController)
}
