package routes

import (
	"agritrade/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addTradeRoutes(
	rg *gin.RouterGroup,
	batchHandler *handlers.BatchHandler,
	biddingHandler *handlers.BiddingHandler,
	retailHandler *handlers.RetailHandler,
) {
	batches := rg.Group("/batches")

	batches.POST("", batchHandler.CreateBatch)
	batches.GET("", batchHandler.ListBatches)
	batches.GET("/:id", batchHandler.GetBatch)
	batches.PATCH("/:id/enlist", batchHandler.EnlistBatch)
	batches.PATCH("/:id/complete", batchHandler.CompleteBatch)

	batches.PATCH("/:id/bidding/start", biddingHandler.StartBidding)
	batches.POST("/:id/bidding/bids", biddingHandler.PlaceBid)
	batches.PATCH("/:id/bidding/stop", biddingHandler.StopBidding)
	batches.PATCH("/:id/transaction/complete", biddingHandler.CompleteTransaction)

	batches.PATCH("/:id/retail/enlist", retailHandler.EnlistForRetailers)
	batches.GET("/:id/purchases", retailHandler.ListBatchPayments)

	purchases := rg.Group("/purchases")
	purchases.POST("", retailHandler.ReservePurchase)
	purchases.POST("/:payment_id/settle", retailHandler.SettlePayment)
	purchases.GET("/:payment_id", retailHandler.GetPayment)
}
