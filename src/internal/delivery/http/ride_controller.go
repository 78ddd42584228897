package http

import (
	"strconv"

	"ride-service/src/internal/model"
	"ride-service/src/internal/usecase"
	httpError "ride-service/src/pkg/http-error"
	"ride-service/src/pkg/log"
	"ride-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type RideController struct {
	Log     log.Log
	UseCase *usecase.RideUseCase
}

func NewRideController(useCase *usecase.RideUseCase, logger log.Log) *RideController {
	return &RideController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RideController) RequestRide(ctx *fiber.Ctx) error {
	request := new(model.RequestRideRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RideController.RequestRide", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.RequestRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Ride requested successfully", fiber.StatusCreated, ctx)
}

func (c *RideController) AcceptRide(ctx *fiber.Ctx) error {
	request := new(model.AcceptRideRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RideController.AcceptRide", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AcceptRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Ride accepted successfully", fiber.StatusOK, ctx)
}

func (c *RideController) CompleteRide(ctx *fiber.Ctx) error {
	request := new(model.CompleteRideRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("RideController.CompleteRide", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.CompleteRide(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Ride completed successfully", fiber.StatusOK, ctx)
}

func (c *RideController) GetRideDetail(ctx *fiber.Ctx) error {
	rideID, err := strconv.ParseUint(ctx.Params("ride_id"), 10, 64)
	if err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = "ride_id must be a positive integer"
		return utils.ResponseError(errObj, ctx)
	}

	request := &model.GetRideDetailRequest{
		RideID: rideID,
	}
	result := c.UseCase.GetRideDetail(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}

	return utils.Response(result.Data, "Ride detail", fiber.StatusOK, ctx)
}
