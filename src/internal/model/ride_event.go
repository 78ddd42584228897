package model

import "time"

type Event interface {
	GetId() string
}

// RideEvent is published to kafka on every lifecycle transition.
type RideEvent struct {
	EventID       string    `json:"event_id"`
	RideID        uint64    `json:"ride_id"`
	RiderID       uint64    `json:"rider_id,omitempty"`
	DriverID      uint64    `json:"driver_id,omitempty"`
	VehicleID     uint64    `json:"vehicle_id,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (e *RideEvent) GetId() string {
	return e.EventID
}
