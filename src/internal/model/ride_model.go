package model

import "time"

type RequestRideRequest struct {
	RiderID         uint64 `json:"rider_id" validate:"required"`
	PickupLocation  string `json:"pickup_location" validate:"required,max=255"`
	DropoffLocation string `json:"dropoff_location" validate:"required,max=255"`
}

type AcceptRideRequest struct {
	RideID    uint64 `json:"ride_id" validate:"required"`
	DriverID  uint64 `json:"driver_id" validate:"required"`
	VehicleID uint64 `json:"vehicle_id" validate:"required"`
}

type CompleteRideRequest struct {
	RideID uint64 `json:"ride_id" validate:"required"`
}

type GetRideDetailRequest struct {
	RideID uint64 `validate:"required"`
}

type RequestRideResponse struct {
	RideID uint64 `json:"ride_id"`
}

type CompleteRideResponse struct {
	PaymentStatus string `json:"paymentStatus"`
}

// RideDetailResponse keeps pointer fields so steps that have not happened
// yet serialize as null instead of dropping the ride from the response.
type RideDetailResponse struct {
	RiderID         uint64     `json:"rider_id"`
	RiderName       string     `json:"rider_name"`
	RideID          uint64     `json:"ride_id"`
	StartTime       *time.Time `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	PickupLocation  string     `json:"pickup_location"`
	DropoffLocation string     `json:"dropoff_location"`
	DriverName      *string    `json:"driver_name"`
	VehicleMake     *string    `json:"vehicle_make"`
	VehicleModel    *string    `json:"vehicle_model"`
	PaymentAmount   *float64   `json:"payment_amount"`
	PaymentStatus   *string    `json:"payment_status"`
	RiderRating     *int       `json:"rider_rating"`
	DriverRating    *int       `json:"driver_rating"`
	RideComments    *string    `json:"ride_comments"`
}
