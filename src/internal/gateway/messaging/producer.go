package messaging

import (
	"encoding/json"

	"ride-service/src/internal/model"
	"ride-service/src/pkg/kafka"
	"ride-service/src/pkg/log"
)

type Producer[T model.Event] struct {
	Producer kafka.Producer
	Topic    string
	Log      log.Log
}

func (p *Producer[T]) GetTopic() *string {
	return &p.Topic
}

func (p *Producer[T]) Send(event T) error {
	value, err := json.Marshal(event)
	if err != nil {
		p.Log.Error("gateway/messaging/producer", "failed to marshal event", "Send", err.Error())
		return err
	}

	err = p.Producer.Publish(p.Topic, []byte(event.GetId()), value)
	if err != nil {
		p.Log.Error("send-event", "error send message", "Send", err.Error())
		return err
	}

	return nil
}
