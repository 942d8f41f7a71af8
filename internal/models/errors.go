package models

import (
	"errors"
	"fmt"
)

type (
	MapErrs     map[string]ErrorDetail
	ErrorDetail struct {
		Code         string `json:"code,omitempty"`
		ErrorMessage error  `json:"message,omitempty"`
	}
)

func (e ErrorDetail) Error() string {
	return fmt.Sprintf("code: %s, message: %v", e.Code, e.ErrorMessage)
}

const (
	ErrKeyUnknownBank                = "TRS4001"
	ErrKeyInvalidAmount              = "TRS4002"
	ErrKeyLimitMustBeGreaterThanZero = "TRS4004"
	ErrKeyPendingTransferNotFound    = "TRS4041"
	ErrKeyPayoutAlreadyReceived      = "TRS4091"
	ErrKeyRunAlreadyInProgress       = "TRS4092"
	ErrKeyNoSuitableMatch            = "TRS4221"
	ErrKeyInternalServer             = "TRS5001"
)

var MapErrors = MapErrs{
	ErrKeyUnknownBank:                {Code: ErrKeyUnknownBank, ErrorMessage: errors.New("bank is not managed by the treasury")},
	ErrKeyInvalidAmount:              {Code: ErrKeyInvalidAmount, ErrorMessage: errors.New("amount must be greater than zero")},
	ErrKeyLimitMustBeGreaterThanZero: {Code: ErrKeyLimitMustBeGreaterThanZero, ErrorMessage: errors.New("limit must be greater than zero")},
	ErrKeyPendingTransferNotFound:    {Code: ErrKeyPendingTransferNotFound, ErrorMessage: errors.New("pending transfer not found")},
	ErrKeyPayoutAlreadyReceived:      {Code: ErrKeyPayoutAlreadyReceived, ErrorMessage: errors.New("expected payout already marked as received")},
	ErrKeyRunAlreadyInProgress:       {Code: ErrKeyRunAlreadyInProgress, ErrorMessage: errors.New("a consolidation run is already in progress")},
	ErrKeyNoSuitableMatch:            {Code: ErrKeyNoSuitableMatch, ErrorMessage: errors.New("no expected payout matches the observed amount")},
	ErrKeyInternalServer:             {Code: ErrKeyInternalServer, ErrorMessage: errors.New("internal server error")},
}

func GetErrMap(code string, args ...string) ErrorDetail {
	v, ok := MapErrors[code]
	if !ok {
		return ErrorDetail{
			Code:         code,
			ErrorMessage: errors.New("unknown error mapping"),
		}
	}
	if len(args) > 0 {
		v.ErrorMessage = fmt.Errorf("%s caused by %s", v.ErrorMessage, args[0])
	}

	return v
}
