package entities

import "errors"

// Domain error taxonomy. All of these are expected, recoverable-by-caller
// conditions; handlers map them to stable codes. Infrastructure failures never
// use these sentinels.
var (
	ErrForbidden            = errors.New("actor lacks the required role or ownership")
	ErrInvalidState         = errors.New("transition not allowed from the current batch status")
	ErrBiddingClosed        = errors.New("bidding window is closed")
	ErrNoBids               = errors.New("no bids were placed on the batch")
	ErrInsufficientQuantity = errors.New("requested quantity exceeds available quantity")
	ErrValidation           = errors.New("invalid or missing payload field")
)
