package converter

import (
	"time"

	"ride-service/src/internal/entity"
	"ride-service/src/internal/model"

	"github.com/google/uuid"
)

func RideDetailToResponse(detail *entity.RideDetail) *model.RideDetailResponse {
	return &model.RideDetailResponse{
		RiderID:         detail.RiderID,
		RiderName:       detail.RiderName,
		RideID:          detail.RideID,
		StartTime:       detail.StartTime,
		EndTime:         detail.EndTime,
		PickupLocation:  detail.PickupLocation,
		DropoffLocation: detail.DropoffLocation,
		DriverName:      detail.DriverName,
		VehicleMake:     detail.VehicleMake,
		VehicleModel:    detail.VehicleModel,
		PaymentAmount:   detail.PaymentAmount,
		PaymentStatus:   detail.PaymentStatus,
		RiderRating:     detail.RiderRating,
		DriverRating:    detail.DriverRating,
		RideComments:    detail.RideComments,
	}
}

func RideRequestedToEvent(rideID, riderID uint64) *model.RideEvent {
	return &model.RideEvent{
		EventID:    uuid.NewString(),
		RideID:     rideID,
		RiderID:    riderID,
		Status:     "REQUESTED",
		OccurredAt: time.Now(),
	}
}

func RideAcceptedToEvent(rideID, driverID, vehicleID uint64) *model.RideEvent {
	return &model.RideEvent{
		EventID:    uuid.NewString(),
		RideID:     rideID,
		DriverID:   driverID,
		VehicleID:  vehicleID,
		Status:     "ACCEPTED",
		OccurredAt: time.Now(),
	}
}

func RideCompletedToEvent(rideID uint64, paymentStatus string) *model.RideEvent {
	return &model.RideEvent{
		EventID:       uuid.NewString(),
		RideID:        rideID,
		Status:        "COMPLETED",
		PaymentStatus: paymentStatus,
		OccurredAt:    time.Now(),
	}
}
