package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Enabled                bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers                []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	CatalogEventsTopicName string   `env:"CATALOG_EVENTS_TOPIC" envDefault:"catalog.part-events"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Enabled() bool              { return cfg.raw.Enabled }
func (cfg *kafka) Brokers() []string          { return cfg.raw.Brokers }
func (cfg *kafka) CatalogEventsTopic() string { return cfg.raw.CatalogEventsTopicName }

func (cfg *kafka) CatalogEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
