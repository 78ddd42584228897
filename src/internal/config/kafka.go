package config

import (
	"ride-service/src/pkg/kafka"
	"ride-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewKafkaProducer(config *viper.Viper, log log.Log) kafka.Producer {
	if !config.GetBool("kafka.producer.enabled") {
		log.Info("kafka-config", "Kafka producer is disabled in configuration", "kafka", "")
		return nil
	}

	kafkaProducer, err := kafka.NewProducer(config.GetString("kafka.brokers"), log)
	if err != nil {
		panic(err)
	}
	return kafkaProducer
}
