package repository

import (
	"context"

	"pede_ai/internal/domain/entities"
	"pede_ai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGatewaySettingsTableName = "gateway_settings"
	gatewaySettingsKey              = "default"
)

type gatewaySettingsItem struct {
	ID                     string `dynamodbav:"id"`
	ProviderAPublicKey     string `dynamodbav:"provider_a_public_key,omitempty"`
	ProviderASecretKey     string `dynamodbav:"provider_a_secret_key,omitempty"`
	ProviderBAPIKey        string `dynamodbav:"provider_b_api_key,omitempty"`
	MercadoPagoAccessToken string `dynamodbav:"mercadopago_access_token,omitempty"`
	PrimaryGateway         string `dynamodbav:"primary_gateway,omitempty"`
}

// GatewaySettingsDynamoRepository reads the store's gateway configuration
// from a single DynamoDB item (PK: id = "default"), written by the
// back-office settings screen.
//
// A missing item is not an error: it yields empty settings, which the
// orchestrator treats as "no provider configured". Only a failing read
// (store unreachable) is reported as an error.

type GatewaySettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IGatewaySettingsRepository = (*GatewaySettingsDynamoRepository)(nil)

func NewGatewaySettingsDynamoRepository(ddb *dynamodb.Client) *GatewaySettingsDynamoRepository {
	return &GatewaySettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("GATEWAY_SETTINGS_TABLE", defaultGatewaySettingsTableName),
	}
}

func (r *GatewaySettingsDynamoRepository) Get(ctx context.Context) (entities.GatewaySettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: gatewaySettingsKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewaySettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewaySettings{}, nil
	}

	var it gatewaySettingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewaySettings{}, err
	}

	return entities.GatewaySettings{
		ProviderAPublicKey:     it.ProviderAPublicKey,
		ProviderASecretKey:     it.ProviderASecretKey,
		ProviderBAPIKey:        it.ProviderBAPIKey,
		MercadoPagoAccessToken: it.MercadoPagoAccessToken,
		PrimaryGateway:         entities.PaymentGateway(it.PrimaryGateway),
	}, nil
}
