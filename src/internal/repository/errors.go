package repository

import "errors"

var (
	ErrRideNotFound        = errors.New("ride not found")
	ErrInvalidAssignment   = errors.New("invalid driver and vehicle mapping")
	ErrRideAlreadyAccepted = errors.New("ride already accepted")
	ErrRideNotInProgress   = errors.New("ride is not in progress")
)
