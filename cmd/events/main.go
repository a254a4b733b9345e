package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	"github.com/SlavaShagalov/car-rental-orders/internal/events/repository"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
	"github.com/SlavaShagalov/car-rental-orders/pkg/events"
	"github.com/SlavaShagalov/car-rental-orders/pkg/migrations"
)

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/events.yaml", "Config file path")
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

	repo := repository.NewSqlxRepository(db, logger)

	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: config.Kafka.Addresses,
		Topic:   config.Kafka.Topic,
	})
	defer kafkaReader.Close()

	bus := events.NewKafkaEvents(kafkaReader, nil, repo, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("consuming rental events", slog.String("topic", config.Kafka.Topic))

	for {
		err = bus.Consume(ctx)
		if ctx.Err() != nil {
			logger.Debug("events consumer exited")
			return
		}
		if err != nil {
			logger.Error(err.Error())
		}
	}
}
