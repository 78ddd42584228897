package usecase

import (
	"context"
	"errors"
	"fmt"

	"ride-service/src/internal/entity"
	"ride-service/src/internal/model"
	"ride-service/src/internal/model/converter"
	"ride-service/src/internal/pricing"
	"ride-service/src/internal/repository"
	httpError "ride-service/src/pkg/http-error"
	"ride-service/src/pkg/log"
	"ride-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RideStore executes the transactional lifecycle writes.
type RideStore interface {
	CreateWithRider(ctx context.Context, riderID uint64, pickupLocation, dropoffLocation string) (uint64, error)
	Accept(ctx context.Context, rideID, driverID, vehicleID uint64) error
	Complete(ctx context.Context, rideID uint64, amount float64, status string) error
}

// RideDetailStore builds the consolidated ride view.
type RideDetailStore interface {
	Detail(ctx context.Context, rideID uint64) (*entity.RideDetail, error)
}

// RideEventPublisher pushes lifecycle events to the message broker.
type RideEventPublisher interface {
	SendRideRequested(event *model.RideEvent) error
	SendRideAccepted(event *model.RideEvent) error
	SendRideCompleted(event *model.RideEvent) error
}

// DetailCache is the best-effort ride detail cache.
type DetailCache interface {
	GetDetail(ctx context.Context, rideID uint64) (*model.RideDetailResponse, bool)
	SetDetail(ctx context.Context, rideID uint64, detail *model.RideDetailResponse)
	Invalidate(ctx context.Context, rideID uint64)
}

type RideUseCase struct {
	Log                log.Log
	Validate           *validator.Validate
	RideRepository     RideStore
	RideViewRepository RideDetailStore
	Config             *viper.Viper
	Cache              DetailCache
	RideProducer       RideEventPublisher
	Pricing            pricing.Generator
}

func NewRideUseCase(
	logger log.Log,
	validate *validator.Validate,
	rideRepository RideStore,
	rideViewRepository RideDetailStore,
	cfg *viper.Viper,
	rideCache DetailCache,
	rideProducer RideEventPublisher,
	generator pricing.Generator,
) *RideUseCase {
	return &RideUseCase{
		Log:                logger,
		Validate:           validate,
		RideRepository:     rideRepository,
		RideViewRepository: rideViewRepository,
		Config:             cfg,
		Cache:              rideCache,
		RideProducer:       rideProducer,
		Pricing:            generator,
	}
}

func (c *RideUseCase) RequestRide(ctx context.Context, request *model.RequestRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "RequestRide", utils.ConvertString(request))
		return result
	}

	rideID, err := c.RideRepository.CreateWithRider(ctx, request.RiderID, request.PickupLocation, request.DropoffLocation)
	if err != nil {
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to create ride: %v", err)
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "RequestRide", utils.ConvertString(err))
		return result
	}
	c.Log.Info("ride-usecase", fmt.Sprintf("ride %d requested by rider %d", rideID, request.RiderID), "RequestRide", "")

	c.publishRequested(converter.RideRequestedToEvent(rideID, request.RiderID))

	result.Data = model.RequestRideResponse{RideID: rideID}
	return result
}

func (c *RideUseCase) AcceptRide(ctx context.Context, request *model.AcceptRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "AcceptRide", utils.ConvertString(request))
		return result
	}

	err := c.RideRepository.Accept(ctx, request.RideID, request.DriverID, request.VehicleID)
	if err != nil {
		result.Error = c.mapAcceptError(err, request)
		return result
	}
	c.Log.Info("ride-usecase", fmt.Sprintf("ride %d accepted by driver %d with vehicle %d", request.RideID, request.DriverID, request.VehicleID), "AcceptRide", "")

	c.Cache.Invalidate(ctx, request.RideID)
	c.publishAccepted(converter.RideAcceptedToEvent(request.RideID, request.DriverID, request.VehicleID))

	return result
}

func (c *RideUseCase) mapAcceptError(err error, request *model.AcceptRideRequest) error {
	switch {
	case errors.Is(err, repository.ErrRideNotFound):
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("ride with id %d not found", request.RideID)
		c.Log.Error("ride-usecase", errObj.Message, "AcceptRide", "")
		return errObj
	case errors.Is(err, repository.ErrInvalidAssignment):
		errObj := httpError.NewBadRequest()
		errObj.Message = "invalid driver and vehicle mapping"
		c.Log.Error("ride-usecase", errObj.Message, "AcceptRide", utils.ConvertString(request))
		return errObj
	case errors.Is(err, repository.ErrRideAlreadyAccepted):
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("ride with id %d is already accepted", request.RideID)
		c.Log.Error("ride-usecase", errObj.Message, "AcceptRide", "concurrent-accept")
		return errObj
	default:
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to accept ride: %v", err)
		c.Log.Error("ride-usecase", errObj.Message, "AcceptRide", utils.ConvertString(err))
		return errObj
	}
}

func (c *RideUseCase) CompleteRide(ctx context.Context, request *model.CompleteRideRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "CompleteRide", utils.ConvertString(request))
		return result
	}

	outcome := c.Pricing.Generate()
	err := c.RideRepository.Complete(ctx, request.RideID, outcome.Amount, outcome.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRideNotFound):
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("ride with id %d not found", request.RideID)
			result.Error = errObj
			c.Log.Error("ride-usecase", errObj.Message, "CompleteRide", "")
		case errors.Is(err, repository.ErrRideNotInProgress):
			errObj := httpError.NewConflict()
			errObj.Message = fmt.Sprintf("ride with id %d is not in progress", request.RideID)
			result.Error = errObj
			c.Log.Error("ride-usecase", errObj.Message, "CompleteRide", "")
		default:
			errObj := httpError.NewInternalServerError()
			errObj.Message = fmt.Sprintf("failed to complete ride: %v", err)
			result.Error = errObj
			c.Log.Error("ride-usecase", errObj.Message, "CompleteRide", utils.ConvertString(err))
		}
		return result
	}
	c.Log.Info("ride-usecase", fmt.Sprintf("ride %d completed, payment %s for %.2f", request.RideID, outcome.Status, outcome.Amount), "CompleteRide", "")

	c.Cache.Invalidate(ctx, request.RideID)
	c.publishCompleted(converter.RideCompletedToEvent(request.RideID, outcome.Status))

	result.Data = model.CompleteRideResponse{PaymentStatus: outcome.Status}
	return result
}

func (c *RideUseCase) GetRideDetail(ctx context.Context, request *model.GetRideDetailRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "GetRideDetail", utils.ConvertString(request))
		return result
	}

	if cached, ok := c.Cache.GetDetail(ctx, request.RideID); ok {
		result.Data = cached
		return result
	}

	detail, err := c.RideViewRepository.Detail(ctx, request.RideID)
	if err != nil {
		if errors.Is(err, repository.ErrRideNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("ride with id %d not found", request.RideID)
			result.Error = errObj
			c.Log.Error("ride-usecase", errObj.Message, "GetRideDetail", "")
			return result
		}
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to get ride detail: %v", err)
		result.Error = errObj
		c.Log.Error("ride-usecase", errObj.Message, "GetRideDetail", utils.ConvertString(err))
		return result
	}

	response := converter.RideDetailToResponse(detail)
	c.Cache.SetDetail(ctx, request.RideID, response)

	result.Data = response
	return result
}

// Event publishing is deliberately fire-and-forget: the lifecycle write has
// already committed, so a broker failure must not fail the request.
func (c *RideUseCase) publishRequested(event *model.RideEvent) {
	if c.RideProducer == nil {
		return
	}
	if err := c.RideProducer.SendRideRequested(event); err != nil {
		c.Log.Error("ride-usecase", fmt.Sprintf("failed publish ride requested event: %v", err), "RequestRide", event.EventID)
	}
}

func (c *RideUseCase) publishAccepted(event *model.RideEvent) {
	if c.RideProducer == nil {
		return
	}
	if err := c.RideProducer.SendRideAccepted(event); err != nil {
		c.Log.Error("ride-usecase", fmt.Sprintf("failed publish ride accepted event: %v", err), "AcceptRide", event.EventID)
	}
}

func (c *RideUseCase) publishCompleted(event *model.RideEvent) {
	if c.RideProducer == nil {
		return
	}
	if err := c.RideProducer.SendRideCompleted(event); err != nil {
		c.Log.Error("ride-usecase", fmt.Sprintf("failed publish ride completed event: %v", err), "CompleteRide", event.EventID)
	}
}
