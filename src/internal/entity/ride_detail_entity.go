package entity

import "time"

// RideDetail is the consolidated read projection for one ride. Driver,
// vehicle, payment and rating columns come from left joins and stay nil
// until the corresponding lifecycle step has happened.
type RideDetail struct {
	RiderID         uint64     `db:"rider_id"`
	RiderName       string     `db:"rider_name"`
	RideID          uint64     `db:"ride_id"`
	StartTime       *time.Time `db:"start_time"`
	EndTime         *time.Time `db:"end_time"`
	PickupLocation  string     `db:"pickup_location"`
	DropoffLocation string     `db:"dropoff_location"`

	DriverName   *string `db:"driver_name"`
	VehicleMake  *string `db:"vehicle_make"`
	VehicleModel *string `db:"vehicle_model"`

	PaymentAmount *float64 `db:"payment_amount"`
	PaymentStatus *string  `db:"payment_status"`

	RiderRating  *int    `db:"rider_rating"`
	DriverRating *int    `db:"driver_rating"`
	RideComments *string `db:"ride_comments"`
}
