package app

import (
	"time"

	"github.com/nil-go/konf"
	"github.com/nil-go/konf/provider/file"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WebConfig struct {
	Host      string
	Port      string
	JwtSecret string
}

type LoggingConfig struct {
	Level int
}

type DBConfig struct {
	DriverName       string
	ConnectionString string
}

type KafkaConfig struct {
	Addresses []string
	Topic     string
}

type JobsConfig struct {
	OverdueSchedule string
}

type BreakerConfig struct {
	MaxFailures uint32
	TimeoutSec  int
}

func (c BreakerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

type Config struct {
	Web     WebConfig
	Logging LoggingConfig
	DB      DBConfig
	Kafka   KafkaConfig
	Jobs    JobsConfig
	Breaker BreakerConfig
}

func defaultConfig() Config {
	return Config{
		Web:     WebConfig{Host: "0.0.0.0", Port: "8080"},
		DB:      DBConfig{DriverName: "postgres"},
		Jobs:    JobsConfig{OverdueSchedule: "@daily"},
		Breaker: BreakerConfig{MaxFailures: 5, TimeoutSec: 30},
	}
}

// ReadLocalConfig loads a YAML config file on top of the defaults.
func ReadLocalConfig(path string) (Config, error) {
	loader := konf.New()
	err := loader.Load(file.New(path, file.WithUnmarshal(yaml.Unmarshal)))
	if err != nil {
		return Config{}, errors.Wrap(err, "load config "+path)
	}

	config := defaultConfig()
	err = loader.Unmarshal("", &config)
	if err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	return config, nil
}
