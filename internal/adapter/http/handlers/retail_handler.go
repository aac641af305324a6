package handlers

import (
	"errors"
	"log"
	"net/http"

	request "agritrade/internal/adapter/http/dto/request"
	response "agritrade/internal/adapter/http/dto/response"
	"agritrade/internal/usecase"
	"agritrade/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRetailPayload = pkg.NewDomainErrorSimple("INVALID_RETAIL_INPUT", "Invalid retail payload", http.StatusBadRequest)

// RetailHandler handles HTTP requests for the retail settlement flow.

type RetailHandler struct {
	usecase usecase.IRetailUseCase
}

func NewRetailHandler(uc usecase.IRetailUseCase) *RetailHandler {
	return &RetailHandler{usecase: uc}
}

// EnlistForRetailers publishes the batch on the retail market:
// SoldToDistributor -> ListedForRetailers.
func (h *RetailHandler) EnlistForRetailers(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.EnlistForRetailersRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRetailPayload.HTTPStatus, errInvalidRetailPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	b, err := h.usecase.EnlistForRetailers(c.Request.Context(), actor, id, payload.PricePerKg)
	if err != nil {
		log.Printf("[retail][handler] enlist failed id=%s err=%v", id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}

// ReservePurchase quotes a quantity and opens a gateway order for it.
func (h *RetailHandler) ReservePurchase(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.ReservePurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRetailPayload.HTTPStatus, errInvalidRetailPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.ReservePurchase(c.Request.Context(), actor, payload.BatchID, payload.Quantity)
	if err != nil {
		log.Printf("[retail][handler] reserve failed batch_id=%s err=%v", payload.BatchID, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRetailPayment(p))
}

// SettlePayment verifies a capture and commits the retail order. The oversold
// reconciliation case still returns the payment snapshot alongside the error
// code so the caller can see the RefundDue flag.
func (h *RetailHandler) SettlePayment(c *gin.Context) {
	if _, ok := actorFromRequest(c); !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.SettlePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRetailPayload.HTTPStatus, errInvalidRetailPayload.ToHTTPError())
		return
	}

	paymentID := c.Param("payment_id")
	p, err := h.usecase.SettlePayment(c.Request.Context(), paymentID, payload.GatewayPaymentID, payload.GatewaySignature)
	if err != nil {
		log.Printf("[retail][handler] settle failed payment_id=%s err=%v", paymentID, err)
		appErr := mapTradeError(err)
		if errors.Is(err, usecase.ErrOversoldRefundDue) {
			c.JSON(appErr.HTTPStatus, gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
				"payment": response.FromRetailPayment(p),
			})
			return
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRetailPayment(p))
}

// ListBatchPayments returns all settlement attempts against a batch.
func (h *RetailHandler) ListBatchPayments(c *gin.Context) {
	id := c.Param("id")
	payments, err := h.usecase.ListBatchPayments(c.Request.Context(), id)
	if err != nil {
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRetailPayments(payments))
}

// GetPayment returns a settlement record.
func (h *RetailHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetPayment(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRetailPayment(p))
}
