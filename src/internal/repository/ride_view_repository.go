package repository

import (
	"context"
	"database/sql"
	"errors"

	"ride-service/src/internal/entity"
	"ride-service/src/pkg/databases/mysql"
)

type RideViewRepository struct {
	DB mysql.DBInterface
}

func NewRideViewRepository(db mysql.DBInterface) *RideViewRepository {
	return &RideViewRepository{
		DB: db,
	}
}

// Detail assembles the consolidated ride view, keyed by ride_id. Driver and
// vehicle come through RideAssignment, so an unaccepted ride still returns
// a row with null driver fields; payment and rating stay optional too.
func (r *RideViewRepository) Detail(ctx context.Context, rideID uint64) (*entity.RideDetail, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var detail entity.RideDetail

	query := `
		SELECT
			ri.rider_id,
			ri.name AS rider_name,
			rd.ride_id,
			rd.start_time,
			rd.end_time,
			rd.pickup_location,
			rd.dropoff_location,
			d.name AS driver_name,
			v.make AS vehicle_make,
			v.model AS vehicle_model,
			p.amount AS payment_amount,
			p.status AS payment_status,
			rt.rider_rating,
			rt.driver_rating,
			rt.comments AS ride_comments
		FROM Ride rd
		JOIN RiderRide rr ON rr.ride_id = rd.ride_id
		JOIN Rider ri ON ri.rider_id = rr.rider_id
		LEFT JOIN RideAssignment ra ON ra.ride_id = rd.ride_id
		LEFT JOIN Driver d ON d.driver_id = ra.driver_id
		LEFT JOIN Vehicle v ON v.vehicle_id = ra.vehicle_id
		LEFT JOIN RidePayment rp ON rp.ride_id = rd.ride_id
		LEFT JOIN Payment p ON p.payment_id = rp.payment_id
		LEFT JOIN Rating rt ON rt.ride_id = rd.ride_id
		WHERE rd.ride_id = ?
	`

	err = db.GetContext(ctx, &detail, query, rideID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRideNotFound
	}
	if err != nil {
		return nil, err
	}

	return &detail, nil
}
