package kafka

import (
	"fmt"
	"strings"

	"ride-service/src/pkg/log"

	"github.com/IBM/sarama"
)

// Producer is the publishing contract consumed by the messaging gateway.
type Producer interface {
	Publish(topic string, key, value []byte) error
	Close() error
}

type producer struct {
	syncProducer sarama.SyncProducer
	log          log.Log
}

// NewProducer creates a synchronous sarama producer. Publishing waits for
// broker acknowledgement so lifecycle events are not silently dropped.
func NewProducer(brokers string, logger log.Log) (Producer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3

	sp, err := sarama.NewSyncProducer(strings.Split(brokers, ","), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &producer{
		syncProducer: sp,
		log:          logger,
	}, nil
}

func (p *producer) Publish(topic string, key, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.ByteEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.syncProducer.SendMessage(msg)
	if err != nil {
		p.log.Error("kafka", fmt.Sprintf("error send message: %v", err), "Publish", topic)
		return err
	}
	p.log.Info("kafka", fmt.Sprintf("message delivered to %s [%d] at offset %d", topic, partition, offset), "Publish", "")
	return nil
}

func (p *producer) Close() error {
	return p.syncProducer.Close()
}
