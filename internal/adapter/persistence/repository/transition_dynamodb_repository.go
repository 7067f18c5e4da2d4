package repository

import (
	"context"
	"time"

	"quoteflow/internal/domain/entities"
	"quoteflow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTransitionsTableName = "transitions"

type transitionItem struct {
	EntityID    string         `dynamodbav:"entity_id"`
	ID          string         `dynamodbav:"id"`
	EntityType  string         `dynamodbav:"entity_type"`
	TenantID    string         `dynamodbav:"tenant_id"`
	ActorUserID *string        `dynamodbav:"actor_user_id,omitempty"`
	Action      string         `dynamodbav:"action"`
	OldStatus   string         `dynamodbav:"old_status"`
	NewStatus   string         `dynamodbav:"new_status"`
	Metadata    map[string]any `dynamodbav:"metadata,omitempty"`
	Timestamp   string         `dynamodbav:"timestamp"`
}

// TransitionDynamoRepository persists TransitionRecord entries in DynamoDB.
//
// Table requirements:
//   - PK: entity_id (string)
//   - SK: id (string)
//
// Records are append-only; nothing updates or deletes them.

type TransitionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRecorder = (*TransitionDynamoRepository)(nil)

func NewTransitionDynamoRepository(ddb *dynamodb.Client) *TransitionDynamoRepository {
	return &TransitionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
	}
}

func (r *TransitionDynamoRepository) Record(ctx context.Context, rec entities.TransitionRecord) error {
	av, err := attributevalue.MarshalMap(toTransitionItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListByEntityID returns the audit trail for one quote or job, oldest first.
func (r *TransitionDynamoRepository) ListByEntityID(ctx context.Context, entityID string) ([]entities.TransitionRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("entity_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: entityID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.TransitionRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transitionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		records = append(records, fromTransitionItem(it))
	}
	sortTransitionRecords(records)
	return records, nil
}

func sortTransitionRecords(records []entities.TransitionRecord) {
	for i := 1; i < len(records); i++ {
		for j := i; j > 0 && records[j].Timestamp.Before(records[j-1].Timestamp); j-- {
			records[j], records[j-1] = records[j-1], records[j]
		}
	}
}

// transitionTransactPut builds the Put item used by transition commits to land
// audit records in the same transaction as the entity write.
func transitionTransactPut(tableName string, rec entities.TransitionRecord) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toTransitionItem(rec))
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(tableName),
			Item:      av,
		},
	}, nil
}

func toTransitionItem(rec entities.TransitionRecord) transitionItem {
	return transitionItem{
		EntityID:    rec.EntityID,
		ID:          rec.ID,
		EntityType:  rec.EntityType,
		TenantID:    rec.TenantID,
		ActorUserID: rec.ActorUserID,
		Action:      rec.Action,
		OldStatus:   rec.OldStatus,
		NewStatus:   rec.NewStatus,
		Metadata:    rec.Metadata,
		Timestamp:   formatTime(rec.Timestamp),
	}
}

func fromTransitionItem(it transitionItem) entities.TransitionRecord {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.TransitionRecord{
		ID:          it.ID,
		EntityType:  it.EntityType,
		EntityID:    it.EntityID,
		TenantID:    it.TenantID,
		ActorUserID: it.ActorUserID,
		Action:      it.Action,
		OldStatus:   it.OldStatus,
		NewStatus:   it.NewStatus,
		Metadata:    it.Metadata,
		Timestamp:   ts,
	}
}
