package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	CORSOrigin() string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Storage interface {
	// Driver is "postgres" or "memory".
	Driver() string
	SeedOnStart() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Admin interface {
	// Token is empty when admin endpoints are disabled.
	Token() string
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	CatalogEventsTopic() string
	CatalogEventsProducerConfig() *sarama.Config
}
