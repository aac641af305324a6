package repository

import (
	"context"
	"errors"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBatchesTableName = "batches"

type bidItem struct {
	DistributorID string  `dynamodbav:"distributor_id"`
	BidPricePerKg float64 `dynamodbav:"bid_price_per_kg"`
	BidDate       string  `dynamodbav:"bid_date"`
}

type tradeEntryItem struct {
	Owner      string  `dynamodbav:"owner"`
	PricePerKg float64 `dynamodbav:"price_per_kg"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

type retailOrderItem struct {
	RetailerID     string  `dynamodbav:"retailer_id"`
	QuantityBought int     `dynamodbav:"quantity_bought"`
	PricePerKg     float64 `dynamodbav:"price_per_kg"`
	PaymentID      string  `dynamodbav:"payment_id"`
	PurchaseDate   string  `dynamodbav:"purchase_date"`
}

type biddingItem struct {
	Status      string    `dynamodbav:"status,omitempty"`
	ClosingDate string    `dynamodbav:"closing_date,omitempty"`
	Winner      string    `dynamodbav:"winner,omitempty"`
	Bids        []bidItem `dynamodbav:"bids,omitempty"`
}

type batchItem struct {
	ID                string            `dynamodbav:"id"`
	BatchID           string            `dynamodbav:"batch_id"`
	FarmerID          string            `dynamodbav:"farmer_id"`
	CropType          string            `dynamodbav:"crop_type"`
	HarvestDate       string            `dynamodbav:"harvest_date,omitempty"`
	Location          string            `dynamodbav:"location,omitempty"`
	Images            []string          `dynamodbav:"images,omitempty"`
	Quantity          int               `dynamodbav:"quantity"`
	AvailableQuantity int               `dynamodbav:"available_quantity"`
	PricePerKg        float64           `dynamodbav:"price_per_kg"`
	Status            string            `dynamodbav:"status"`
	Bidding           biddingItem       `dynamodbav:"bidding"`
	TradeHistory      []tradeEntryItem  `dynamodbav:"trade_history"`
	RetailOrders      []retailOrderItem `dynamodbav:"retail_orders,omitempty"`
	Version           int               `dynamodbav:"version"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// BatchDynamoRepository persists the Batch aggregate in DynamoDB as a single
// document per batch.
//
// Table requirements:
//   - PK: id (string)
//
// Concurrency model:
//   - `version` is the optimistic concurrency token. Create writes version 1
//     conditionally on the id not existing; Save writes version n+1
//     conditionally on the stored version still being n. A failed condition is
//     never retried here; it surfaces as interfaces.ErrVersionConflict.

type BatchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBatchRepository = (*BatchDynamoRepository)(nil)

func NewBatchDynamoRepository(ddb *dynamodb.Client) *BatchDynamoRepository {
	return &BatchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BATCHES_TABLE", defaultBatchesTableName),
	}
}

func (r *BatchDynamoRepository) Create(ctx context.Context, b entities.Batch) (entities.Batch, error) {
	b.Version = 1
	av, err := attributevalue.MarshalMap(toBatchItem(b))
	if err != nil {
		return entities.Batch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Batch{}, interfaces.ErrAlreadyExists
		}
		return entities.Batch{}, err
	}
	return b, nil
}

func (r *BatchDynamoRepository) GetByID(ctx context.Context, id string) (entities.Batch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Batch{}, err
	}
	if len(out.Item) == 0 {
		return entities.Batch{}, nil
	}

	var it batchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Batch{}, err
	}
	return fromBatchItem(it), nil
}

func (r *BatchDynamoRepository) List(ctx context.Context) ([]entities.Batch, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	batches := make([]entities.Batch, 0, len(out.Items))
	for _, raw := range out.Items {
		var it batchItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		batches = append(batches, fromBatchItem(it))
	}
	return batches, nil
}

// Save replaces the whole document conditionally on the version it was read
// at. The returned batch carries the incremented version.
func (r *BatchDynamoRepository) Save(ctx context.Context, b entities.Batch) (entities.Batch, error) {
	readVersion := b.Version
	b.Version = readVersion + 1

	av, err := attributevalue.MarshalMap(toBatchItem(b))
	if err != nil {
		return entities.Batch{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :read_version"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":read_version": &types.AttributeValueMemberN{Value: intToString(readVersion)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Batch{}, interfaces.ErrVersionConflict
		}
		return entities.Batch{}, err
	}
	return b, nil
}

func toBatchItem(b entities.Batch) batchItem {
	bids := make([]bidItem, 0, len(b.Bidding.Bids))
	for _, bid := range b.Bidding.Bids {
		bids = append(bids, bidItem{
			DistributorID: bid.DistributorID,
			BidPricePerKg: bid.BidPricePerKg,
			BidDate:       formatTime(bid.BidDate),
		})
	}

	history := make([]tradeEntryItem, 0, len(b.TradeHistory))
	for _, e := range b.TradeHistory {
		history = append(history, tradeEntryItem{
			Owner:      e.Owner,
			PricePerKg: e.PricePerKg,
			UpdatedAt:  formatTime(e.UpdatedAt),
		})
	}

	orders := make([]retailOrderItem, 0, len(b.RetailOrders))
	for _, o := range b.RetailOrders {
		orders = append(orders, retailOrderItem{
			RetailerID:     o.RetailerID,
			QuantityBought: o.QuantityBought,
			PricePerKg:     o.PricePerKg,
			PaymentID:      o.PaymentID,
			PurchaseDate:   formatTime(o.PurchaseDate),
		})
	}

	return batchItem{
		ID:                b.ID,
		BatchID:           b.BatchID,
		FarmerID:          b.FarmerID,
		CropType:          b.CropType,
		HarvestDate:       formatOptionalTime(b.HarvestDate),
		Location:          b.Location,
		Images:            b.Images,
		Quantity:          b.Quantity,
		AvailableQuantity: b.AvailableQuantity,
		PricePerKg:        b.PricePerKg,
		Status:            string(b.Status),
		Bidding: biddingItem{
			Status:      string(b.Bidding.Status),
			ClosingDate: formatOptionalTime(b.Bidding.ClosingDate),
			Winner:      b.Bidding.Winner,
			Bids:        bids,
		},
		TradeHistory: history,
		RetailOrders: orders,
		Version:      b.Version,
		CreatedAt:    formatTime(b.CreatedAt),
		UpdatedAt:    formatTime(b.UpdatedAt),
	}
}

func fromBatchItem(it batchItem) entities.Batch {
	bids := make([]entities.Bid, 0, len(it.Bidding.Bids))
	for _, bid := range it.Bidding.Bids {
		bids = append(bids, entities.Bid{
			DistributorID: bid.DistributorID,
			BidPricePerKg: bid.BidPricePerKg,
			BidDate:       parseTime(bid.BidDate),
		})
	}

	history := make([]entities.TradeEntry, 0, len(it.TradeHistory))
	for _, e := range it.TradeHistory {
		history = append(history, entities.TradeEntry{
			Owner:      e.Owner,
			PricePerKg: e.PricePerKg,
			UpdatedAt:  parseTime(e.UpdatedAt),
		})
	}

	orders := make([]entities.RetailOrder, 0, len(it.RetailOrders))
	for _, o := range it.RetailOrders {
		orders = append(orders, entities.RetailOrder{
			RetailerID:     o.RetailerID,
			QuantityBought: o.QuantityBought,
			PricePerKg:     o.PricePerKg,
			PaymentID:      o.PaymentID,
			PurchaseDate:   parseTime(o.PurchaseDate),
		})
	}
	if len(orders) == 0 {
		orders = nil
	}

	return entities.Batch{
		ID:                it.ID,
		BatchID:           it.BatchID,
		FarmerID:          it.FarmerID,
		CropType:          it.CropType,
		HarvestDate:       parseTime(it.HarvestDate),
		Location:          it.Location,
		Images:            it.Images,
		Quantity:          it.Quantity,
		AvailableQuantity: it.AvailableQuantity,
		PricePerKg:        it.PricePerKg,
		Status:            entities.BatchStatus(it.Status),
		Bidding: entities.BiddingRecord{
			Status:      entities.BiddingStatus(it.Bidding.Status),
			ClosingDate: parseTime(it.Bidding.ClosingDate),
			Winner:      it.Bidding.Winner,
			Bids:        bids,
		},
		TradeHistory: history,
		RetailOrders: orders,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
