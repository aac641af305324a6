package handlers

import (
	"log"
	"net/http"

	request "agritrade/internal/adapter/http/dto/request"
	response "agritrade/internal/adapter/http/dto/response"
	"agritrade/internal/usecase"
	"agritrade/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)

// BiddingHandler handles HTTP requests for the bidding window of a batch.

type BiddingHandler struct {
	usecase usecase.IBiddingUseCase
}

func NewBiddingHandler(uc usecase.IBiddingUseCase) *BiddingHandler {
	return &BiddingHandler{usecase: uc}
}

// StartBidding opens the bidding window: Listed -> Bidding.
func (h *BiddingHandler) StartBidding(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	// Empty body means default closing date; a present but malformed body is
	// still a client error.
	var payload request.StartBiddingRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
			return
		}
	}

	id := c.Param("id")
	b, err := h.usecase.StartBidding(c.Request.Context(), actor, id, payload.ClosingDate)
	if err != nil {
		log.Printf("[bidding][handler] start failed id=%s err=%v", id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}

// PlaceBid appends a distributor bid to an open window.
func (h *BiddingHandler) PlaceBid(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.PlaceBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	b, err := h.usecase.PlaceBid(c.Request.Context(), actor, id, payload.BidPricePerKg)
	if err != nil {
		log.Printf("[bidding][handler] place-bid failed id=%s err=%v", id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBatch(b))
}

// StopBidding resolves the winner: Bidding -> AwaitingSettlement.
func (h *BiddingHandler) StopBidding(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	id := c.Param("id")
	b, err := h.usecase.StopBidding(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[bidding][handler] stop failed id=%s err=%v", id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}

// CompleteTransaction transfers ownership to the winner:
// AwaitingSettlement -> SoldToDistributor.
func (h *BiddingHandler) CompleteTransaction(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	id := c.Param("id")
	b, err := h.usecase.CompleteTransaction(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[bidding][handler] complete-transaction failed id=%s err=%v", id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}
