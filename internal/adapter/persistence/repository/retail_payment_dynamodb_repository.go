package repository

import (
	"context"
	"errors"
	"time"

	"agritrade/internal/domain/entities"
	"agritrade/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRetailPaymentsTableName = "retail_payments"
	retailPaymentsBatchIDIndex     = "batch_id-index"
)

type retailPaymentItem struct {
	ID               string  `dynamodbav:"id"`
	RetailerID       string  `dynamodbav:"retailer_id"`
	BatchID          string  `dynamodbav:"batch_id"`
	Quantity         int     `dynamodbav:"quantity"`
	PricePerKg       float64 `dynamodbav:"price_per_kg"`
	TotalAmount      float64 `dynamodbav:"total_amount"`
	GatewayOrderID   string  `dynamodbav:"gateway_order_id"`
	GatewayPaymentID string  `dynamodbav:"gateway_payment_id,omitempty"`
	Status           string  `dynamodbav:"status"`
	RefundDue        bool    `dynamodbav:"refund_due,omitempty"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

// RetailPaymentDynamoRepository persists RetailPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: batch_id-index (PK: batch_id)
//
// The PENDING -> PAID and PENDING -> FAILED flips are conditional on the
// current status, so each payment settles exactly once and never reverts.

type RetailPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRetailPaymentRepository = (*RetailPaymentDynamoRepository)(nil)

func NewRetailPaymentDynamoRepository(ddb *dynamodb.Client) *RetailPaymentDynamoRepository {
	return &RetailPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RETAIL_PAYMENTS_TABLE", defaultRetailPaymentsTableName),
	}
}

func (r *RetailPaymentDynamoRepository) Create(ctx context.Context, p entities.RetailPayment) (entities.RetailPayment, error) {
	av, err := attributevalue.MarshalMap(toRetailPaymentItem(p))
	if err != nil {
		return entities.RetailPayment{}, err
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
		return entities.RetailPayment{}, err
	}
	return p, nil
}

func (r *RetailPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.RetailPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RetailPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.RetailPayment{}, nil
	}

	var it retailPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RetailPayment{}, err
	}
	return fromRetailPaymentItem(it), nil
}

func (r *RetailPaymentDynamoRepository) ListByBatchID(ctx context.Context, batchID string) ([]entities.RetailPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(retailPaymentsBatchIDIndex),
		KeyConditionExpression: aws.String("batch_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: batchID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.RetailPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it retailPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRetailPaymentItem(it))
	}
	return items, nil
}

func (r *RetailPaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.PaymentStatus, gatewayPaymentID string) (entities.RetailPayment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #gateway_payment_id = :gpid, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                 "id",
			"#status":             "status",
			"#gateway_payment_id": "gateway_payment_id",
			"#updated_at":         "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":gpid":       &types.AttributeValueMemberS{Value: gatewayPaymentID},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RetailPayment{}, interfaces.ErrStatusConflict
		}
		return entities.RetailPayment{}, err
	}

	var it retailPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RetailPayment{}, err
	}
	return fromRetailPaymentItem(it), nil
}

func (r *RetailPaymentDynamoRepository) MarkRefundDue(ctx context.Context, id string) (entities.RetailPayment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #refund_due = :true, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#refund_due": "refund_due",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.RetailPayment{}, err
	}

	var it retailPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RetailPayment{}, err
	}
	return fromRetailPaymentItem(it), nil
}

func toRetailPaymentItem(p entities.RetailPayment) retailPaymentItem {
	return retailPaymentItem{
		ID:               p.ID,
		RetailerID:       p.RetailerID,
		BatchID:          p.BatchID,
		Quantity:         p.Quantity,
		PricePerKg:       p.PricePerKg,
		TotalAmount:      p.TotalAmount,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           string(p.Status),
		RefundDue:        p.RefundDue,
		CreatedAt:        formatTime(p.CreatedAt),
		UpdatedAt:        formatTime(p.UpdatedAt),
	}
}

func fromRetailPaymentItem(it retailPaymentItem) entities.RetailPayment {
	return entities.RetailPayment{
		ID:               it.ID,
		RetailerID:       it.RetailerID,
		BatchID:          it.BatchID,
		Quantity:         it.Quantity,
		PricePerKg:       it.PricePerKg,
		TotalAmount:      it.TotalAmount,
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		Status:           entities.PaymentStatus(it.Status),
		RefundDue:        it.RefundDue,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
