package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	carsDelivery "github.com/SlavaShagalov/car-rental-orders/internal/cars/delivery"
	carsRepository "github.com/SlavaShagalov/car-rental-orders/internal/cars/repository"
	carsUsecase "github.com/SlavaShagalov/car-rental-orders/internal/cars/usecase"
	customersDelivery "github.com/SlavaShagalov/car-rental-orders/internal/customers/delivery"
	customersRepository "github.com/SlavaShagalov/car-rental-orders/internal/customers/repository"
	customersUsecase "github.com/SlavaShagalov/car-rental-orders/internal/customers/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	ordersDelivery "github.com/SlavaShagalov/car-rental-orders/internal/orders/delivery"
	"github.com/SlavaShagalov/car-rental-orders/internal/orders/jobs"
	ordersRepository "github.com/SlavaShagalov/car-rental-orders/internal/orders/repository"
	ordersUsecase "github.com/SlavaShagalov/car-rental-orders/internal/orders/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
	"github.com/SlavaShagalov/car-rental-orders/pkg/events"
	"github.com/SlavaShagalov/car-rental-orders/pkg/migrations"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, scheduler *jobs.Scheduler, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s", config.Web.Host+":"+config.Web.Port))

	scheduler.Start()

	go func() {
		err := webApp.Start()
		if err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, scheduler *jobs.Scheduler, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := webApp.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	err = scheduler.Stop(ctx)
	if err != nil {
		logger.Error("stop scheduler", slog.String("error", err.Error()))
	}

	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/api.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "", "migrations", "Migrations directory path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}

	defer func(db *sqlx.DB) {
		err = db.Close()
		if err != nil {
			panic(err)
		}
	}(db)

	err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger)
	if err != nil {
		panic(err)
	}

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	publisher := events.NewKafkaEvents(nil, kafkaWriter, nil, logger,
		events.WithBreaker(config.Breaker.MaxFailures, config.Breaker.Timeout()),
	)

	ordersUC := ordersUsecase.New(
		ordersRepository.NewSqlxRepository(db, logger),
		publisher,
		logger,
		ordersUsecase.WithAvailabilityRule(models.ContainedIn),
	)
	carsUC := carsUsecase.New(
		carsRepository.NewSqlxRepository(db, logger),
		logger,
		carsUsecase.WithAvailabilityRule(models.ContainedIn),
	)

	customersUC := customersUsecase.New(customersRepository.NewSqlxRepository(db, logger), logger)

	scheduler, err := jobs.NewScheduler(config.Jobs.OverdueSchedule, ordersUC, logger)
	if err != nil {
		panic(err)
	}

	webApp := app.NewFiberApp(config.Web, app.NewAuth(config.Web.JwtSecret, logger), logger,
		ordersDelivery.New(ordersUC, logger),
		carsDelivery.New(carsUC, logger),
		customersDelivery.New(customersUC, logger),
	)

	startApp(webApp, scheduler, config, logger)
	shutdownApp(webApp, scheduler, logger)
}
