package handlers

import (
	"context"
	"log"
	"net/http"

	request "agritrade/internal/adapter/http/dto/request"
	response "agritrade/internal/adapter/http/dto/response"
	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase"
	"agritrade/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBatchPayload = pkg.NewDomainErrorSimple("INVALID_BATCH_INPUT", "Invalid batch payload", http.StatusBadRequest)

// BatchHandler handles HTTP requests for the farmer-facing batch lifecycle
// and shared reads.

type BatchHandler struct {
	usecase usecase.IBatchUseCase
}

func NewBatchHandler(uc usecase.IBatchUseCase) *BatchHandler {
	return &BatchHandler{usecase: uc}
}

// CreateBatch registers a harvested lot and seeds its trade ledger.
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	var payload request.CreateBatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBatchPayload.HTTPStatus, errInvalidBatchPayload.ToHTTPError())
		return
	}

	b, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		log.Printf("[batch][handler] create failed batch_id=%s err=%v", payload.BatchID, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBatch(b))
}

// GetBatch returns the batch snapshot.
func (h *BatchHandler) GetBatch(c *gin.Context) {
	b, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}

// ListBatches returns all batches.
func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatches(batches))
}

// EnlistBatch publishes a created batch: Created -> Listed.
func (h *BatchHandler) EnlistBatch(c *gin.Context) {
	h.patchBatch(c, "enlist", h.usecase.Enlist)
}

// CompleteBatch closes out a fully sold batch: SoldToRetailer -> Completed.
func (h *BatchHandler) CompleteBatch(c *gin.Context) {
	h.patchBatch(c, "complete", h.usecase.CompleteBatch)
}

func (h *BatchHandler) patchBatch(
	c *gin.Context,
	name string,
	apply func(ctx context.Context, actor entities.Actor, id string) (entities.Batch, error),
) {
	actor, ok := actorFromRequest(c)
	if !ok {
		rejectMissingActor(c)
		return
	}

	id := c.Param("id")
	b, err := apply(c.Request.Context(), actor, id)
	if err != nil {
		log.Printf("[batch][handler] %s failed id=%s err=%v", name, id, err)
		appErr := mapTradeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatch(b))
}
