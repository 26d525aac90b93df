package repository

import (
	"context"
	"time"

	"sama-store/internal/domain/entities"
	"sama-store/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOtpTableName = "otp_verifications"
	otpUserIDIndex      = "user_id-index"
)

type otpItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Phone     string `dynamodbav:"phone"`
	Code      string `dynamodbav:"code"`
	Consumed  bool   `dynamodbav:"consumed"`
	ExpiresAt string `dynamodbav:"expires_at"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OtpDynamoRepository persists OtpVerification entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)

type OtpDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOtpRepository = (*OtpDynamoRepository)(nil)

func NewOtpDynamoRepository(ddb *dynamodb.Client) *OtpDynamoRepository {
	return &OtpDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("OTP_TABLE", defaultOtpTableName),
	}
}

func (r *OtpDynamoRepository) Create(ctx context.Context, v entities.OtpVerification) (entities.OtpVerification, error) {
	it := toOtpItem(v)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OtpVerification{}, err
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
		return entities.OtpVerification{}, err
	}
	return v, nil
}

// LatestByUserPhone returns the newest unconsumed record for user+phone, or a
// zero value when none exists. The GSI is walked newest-first; the filter is
// applied server-side per page.
func (r *OtpDynamoRepository) LatestByUserPhone(ctx context.Context, userID, phone string) (entities.OtpVerification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(otpUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		FilterExpression:       aws.String("phone = :phone AND consumed = :consumed"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":      &types.AttributeValueMemberS{Value: userID},
			":phone":    &types.AttributeValueMemberS{Value: phone},
			":consumed": &types.AttributeValueMemberBOOL{Value: false},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return entities.OtpVerification{}, err
	}
	if len(out.Items) == 0 {
		return entities.OtpVerification{}, nil
	}

	var it otpItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.OtpVerification{}, err
	}
	return fromOtpItem(it), nil
}

func (r *OtpDynamoRepository) CountByUserSince(ctx context.Context, userID string, since time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(otpUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid AND created_at >= :cutoff"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":cutoff": &types.AttributeValueMemberS{Value: formatTime(since)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *OtpDynamoRepository) MarkConsumed(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression: aws.String("SET #consumed = :consumed"),
		ExpressionAttributeNames: map[string]string{
			"#consumed": "consumed",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":consumed": &types.AttributeValueMemberBOOL{Value: true},
		},
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	return err
}

func toOtpItem(v entities.OtpVerification) otpItem {
	return otpItem{
		ID:        v.ID,
		UserID:    v.UserID,
		Phone:     v.Phone,
		Code:      v.Code,
		Consumed:  v.Consumed,
		ExpiresAt: formatTime(v.ExpiresAt),
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func fromOtpItem(it otpItem) entities.OtpVerification {
	return entities.OtpVerification{
		ID:        it.ID,
		UserID:    it.UserID,
		Phone:     it.Phone,
		Code:      it.Code,
		Consumed:  it.Consumed,
		ExpiresAt: parseTime(it.ExpiresAt),
		CreatedAt: parseTime(it.CreatedAt),
	}
}
