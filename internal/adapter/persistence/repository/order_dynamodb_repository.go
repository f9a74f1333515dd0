package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName   = "orders"
	ordersTransactionIDIndex = "provider_transaction_id-index"
)

type orderItem struct {
	ID               string `dynamodbav:"id"`
	Amount           string `dynamodbav:"amount"`
	CustomerName     string `dynamodbav:"customer_name"`
	CustomerEmail    string `dynamodbav:"customer_email,omitempty"`
	CustomerPhone    string `dynamodbav:"customer_phone"`
	CustomerDocument string `dynamodbav:"customer_document,omitempty"`

	PaymentGateway        string `dynamodbav:"payment_gateway,omitempty"`
	ProviderTransactionID string `dynamodbav:"provider_transaction_id,omitempty"`
	PixQRCode             string `dynamodbav:"pix_qrcode,omitempty"`
	PixExpiration         string `dynamodbav:"pix_expiration,omitempty"`

	PaymentStatus string `dynamodbav:"payment_status"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: provider_transaction_id-index (PK: provider_transaction_id)
//
// The GSI serves the webhook flow, which only knows the provider's own
// transaction id.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetByProviderTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTransactionIDIndex),
		KeyConditionExpression: aws.String("provider_transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdatePixPayment records the winning provider's charge on the order.
// All four PIX fields go out in one UpdateItem so the invariant
// "payment_gateway and provider_transaction_id are set together" holds
// even under failure.
func (r *OrderDynamoRepository) UpdatePixPayment(ctx context.Context, orderID string, charge entities.PixCharge) (entities.Order, error) {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_gateway = :payment_gateway, #provider_transaction_id = :provider_transaction_id, #pix_qrcode = :pix_qrcode, #pix_expiration = :pix_expiration, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_gateway":         &types.AttributeValueMemberS{Value: string(charge.Gateway)},
			":provider_transaction_id": &types.AttributeValueMemberS{Value: charge.TransactionID},
			":pix_qrcode":              &types.AttributeValueMemberS{Value: charge.QRCode},
			":pix_expiration":          &types.AttributeValueMemberS{Value: charge.ExpiresAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":              &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_gateway":         "payment_gateway",
			"#provider_transaction_id": "provider_transaction_id",
			"#pix_qrcode":              "pix_qrcode",
			"#pix_expiration":          "pix_expiration",
			"#updated_at":              "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePaymentStatus(ctx context.Context, orderID string, payment entities.PaymentStatus, status entities.OrderStatus) (entities.Order, error) {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(payment)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		if status != "" {
			expr += ", #status = :status"
			vals[":status"] = &types.AttributeValueMemberS{Value: string(status)}
			names["#status"] = "status"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                    o.ID,
		Amount:                floatToString(o.Amount),
		CustomerName:          o.Customer.Name,
		CustomerEmail:         o.Customer.Email,
		CustomerPhone:         o.Customer.Phone,
		CustomerDocument:      o.Customer.Document,
		PaymentGateway:        string(o.PaymentGateway),
		ProviderTransactionID: o.ProviderTransactionID,
		PixQRCode:             o.PixQRCode,
		PaymentStatus:         string(o.PaymentStatus),
		Status:                string(o.Status),
		CreatedAt:             o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:             o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.PixExpiration != nil {
		it.PixExpiration = o.PixExpiration.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	o := entities.Order{
		ID:     it.ID,
		Amount: amount,
		Customer: entities.Customer{
			Name:     it.CustomerName,
			Email:    it.CustomerEmail,
			Phone:    it.CustomerPhone,
			Document: it.CustomerDocument,
		},
		PaymentGateway:        entities.PaymentGateway(it.PaymentGateway),
		ProviderTransactionID: it.ProviderTransactionID,
		PixQRCode:             it.PixQRCode,
		PaymentStatus:         entities.PaymentStatus(it.PaymentStatus),
		Status:                entities.OrderStatus(it.Status),
		CreatedAt:             createdAt,
		UpdatedAt:             updatedAt,
	}
	if it.PixExpiration != "" {
		if exp, err := time.Parse(time.RFC3339Nano, it.PixExpiration); err == nil {
			o.PixExpiration = &exp
		}
	}
	return o
}
