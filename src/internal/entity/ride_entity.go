package entity

import "time"

// Ride lifecycle: requested (both times unset), accepted (start_time set),
// completed (end_time set). end_time is never set without start_time.
type Ride struct {
	RideID          uint64     `db:"ride_id"`
	PickupLocation  string     `db:"pickup_location"`
	DropoffLocation string     `db:"dropoff_location"`
	StartTime       *time.Time `db:"start_time"`
	EndTime         *time.Time `db:"end_time"`
}

// RideAssignment records which driver/vehicle pairing won acceptance of a
// ride. Written in the same transaction as the start_time update.
type RideAssignment struct {
	RideID    uint64 `db:"ride_id"`
	DriverID  uint64 `db:"driver_id"`
	VehicleID uint64 `db:"vehicle_id"`
}
