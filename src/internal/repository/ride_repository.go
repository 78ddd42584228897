package repository

import (
	"context"
	"database/sql"
	"errors"

	"ride-service/src/internal/entity"
	"ride-service/src/pkg/databases/mysql"
)

type RideRepository struct {
	DB mysql.DBInterface
}

func NewRideRepository(db mysql.DBInterface) *RideRepository {
	return &RideRepository{
		DB: db,
	}
}

// CreateWithRider inserts the ride and its rider association in one
// transaction. Either both rows become visible or neither does.
func (r *RideRepository) CreateWithRider(ctx context.Context, riderID uint64, pickupLocation, dropoffLocation string) (uint64, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO Ride (pickup_location, dropoff_location) VALUES (?, ?)`,
		pickupLocation, dropoffLocation,
	)
	if err != nil {
		return 0, err
	}

	rideID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO RiderRide (rider_id, ride_id) VALUES (?, ?)`,
		riderID, rideID,
	)
	if err != nil {
		return 0, err
	}

	return uint64(rideID), tx.Commit()
}

// Accept locks the ride row, validates the driver/vehicle pairing and
// performs the guarded Requested -> Accepted transition. The FOR UPDATE
// lock serializes concurrent acceptance attempts on the same ride; the
// conditional update makes the loser fail with ErrRideAlreadyAccepted
// instead of silently overwriting start_time.
func (r *RideRepository) Accept(ctx context.Context, rideID, driverID, vehicleID uint64) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var ride entity.Ride
	err = tx.GetContext(ctx, &ride,
		`SELECT ride_id, pickup_location, dropoff_location, start_time, end_time
		 FROM Ride WHERE ride_id = ? FOR UPDATE`,
		rideID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRideNotFound
	}
	if err != nil {
		return err
	}

	var pairings int
	err = tx.GetContext(ctx, &pairings,
		`SELECT COUNT(1) FROM DriverVehicle WHERE driver_id = ? AND vehicle_id = ?`,
		driverID, vehicleID,
	)
	if err != nil {
		return err
	}
	if pairings == 0 {
		return ErrInvalidAssignment
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE Ride SET start_time = NOW() WHERE ride_id = ? AND start_time IS NULL`,
		rideID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRideAlreadyAccepted
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO RideAssignment (ride_id, driver_id, vehicle_id) VALUES (?, ?, ?)`,
		rideID, driverID, vehicleID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Complete performs the Accepted -> Completed transition together with the
// payment insert and the ride/payment link. All writes commit together or
// roll back together.
func (r *RideRepository) Complete(ctx context.Context, rideID uint64, amount float64, status string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var ride entity.Ride
	err = tx.GetContext(ctx, &ride,
		`SELECT ride_id, pickup_location, dropoff_location, start_time, end_time
		 FROM Ride WHERE ride_id = ? FOR UPDATE`,
		rideID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRideNotFound
	}
	if err != nil {
		return err
	}

	if ride.StartTime == nil || ride.EndTime != nil {
		return ErrRideNotInProgress
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO Payment (amount, status, payment_date) VALUES (?, ?, NOW())`,
		amount, status,
	)
	if err != nil {
		return err
	}

	paymentID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE Ride SET end_time = NOW() WHERE ride_id = ?`,
		rideID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO RidePayment (ride_id, payment_id) VALUES (?, ?)`,
		rideID, paymentID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}
