package common

import (
	"errors"
)

var (
	ErrDataNotFound            = errors.New("data not found")
	ErrNoRowsAffected          = errors.New("no rows affected")
	ErrInternalServerError     = errors.New("internal server error")
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrUnknownBank             = errors.New("bank is not configured")
	ErrPayoutAlreadyReceived   = errors.New("payout record already marked received")
	ErrNoSuitableMatch         = errors.New("no suitable payout match")
	ErrPendingTransferNotFound = errors.New("pending transfer not found")
	ErrRunAlreadyInProgress    = errors.New("consolidation run already in progress")
	ErrManualTransferRequired  = errors.New("transfer requires manual intervention")
	ErrUnableToCreate          = errors.New("unable to create data")
	ErrUnableToUpdate          = errors.New("unable to update data")
	ErrValidation              = errors.New("validation failed")
)
