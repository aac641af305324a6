package handlers

import (
	"errors"
	"net/http"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase"
	"agritrade/pkg"
)

// mapTradeError translates the domain/usecase taxonomy into stable HTTP
// codes. Everything here is an expected, recoverable-by-caller condition; the
// default branch is the only genuine server fault.
func mapTradeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRetailPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchAlreadyExists):
		return pkg.NewDomainErrorSimple("BATCH_ALREADY_EXISTS", "A batch with this id already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Actor lacks the required role or ownership", http.StatusForbidden)
	case errors.Is(err, entities.ErrBiddingClosed):
		return pkg.NewDomainErrorSimple("BIDDING_CLOSED", "Bidding window is closed", http.StatusConflict)
	case errors.Is(err, entities.ErrNoBids):
		return pkg.NewDomainErrorSimple("NO_BIDS", "No bids were placed on this batch", http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientQuantity):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_QUANTITY", "Requested quantity exceeds available quantity", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidState):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Transition not allowed from the current batch status", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Payment signature mismatch", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_SETTLED", "Payment was already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrOversoldRefundDue):
		return pkg.NewDomainErrorSimple("OVERSOLD_REFUND_DUE", "Payment captured but quantity no longer available, refund due", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Batch was modified concurrently, retry", http.StatusConflict)
	case errors.Is(err, entities.ErrValidation), errors.Is(err, usecase.ErrInvalidBatchID), errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
