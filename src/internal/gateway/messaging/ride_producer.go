package messaging

import (
	"ride-service/src/internal/model"
	"ride-service/src/pkg/kafka"
	"ride-service/src/pkg/log"
)

type RideProducer struct {
	RequestedProducer Producer[*model.RideEvent]
	AcceptedProducer  Producer[*model.RideEvent]
	CompletedProducer Producer[*model.RideEvent]
}

func NewRideProducer(producer kafka.Producer, log log.Log) *RideProducer {
	return &RideProducer{
		RequestedProducer: Producer[*model.RideEvent]{
			Producer: producer,
			Topic:    "ride-requested",
			Log:      log,
		},
		AcceptedProducer: Producer[*model.RideEvent]{
			Producer: producer,
			Topic:    "ride-accepted",
			Log:      log,
		},
		CompletedProducer: Producer[*model.RideEvent]{
			Producer: producer,
			Topic:    "ride-completed",
			Log:      log,
		},
	}
}

func (p *RideProducer) SendRideRequested(event *model.RideEvent) error {
	return p.RequestedProducer.Send(event)
}

func (p *RideProducer) SendRideAccepted(event *model.RideEvent) error {
	return p.AcceptedProducer.Send(event)
}

func (p *RideProducer) SendRideCompleted(event *model.RideEvent) error {
	return p.CompletedProducer.Send(event)
}
