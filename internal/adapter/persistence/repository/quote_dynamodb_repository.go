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

const defaultQuotesTableName = "quotes"

type quoteItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	ID       string `dynamodbav:"id"`
	Number   string `dynamodbav:"number"`
	Status   string `dynamodbav:"status"`

	CustomerEmail   string `dynamodbav:"customer_email,omitempty"`
	ContractorEmail string `dynamodbav:"contractor_email,omitempty"`

	SentAt        string `dynamodbav:"sent_at,omitempty"`
	ViewedAt      string `dynamodbav:"viewed_at,omitempty"`
	AcceptedAt    string `dynamodbav:"accepted_at,omitempty"`
	ApprovedAt    string `dynamodbav:"approved_at,omitempty"`
	DeclinedAt    string `dynamodbav:"declined_at,omitempty"`
	DeclineReason string `dynamodbav:"decline_reason,omitempty"`

	DepositVerified      bool   `dynamodbav:"deposit_verified"`
	DepositVerifiedAt    string `dynamodbav:"deposit_verified_at,omitempty"`
	DepositPaymentMethod string `dynamodbav:"deposit_payment_method,omitempty"`
	DepositTransactionID string `dynamodbav:"deposit_transaction_id,omitempty"`

	PortalOpen     bool   `dynamodbav:"portal_open"`
	PortalOpenedAt string `dynamodbav:"portal_opened_at,omitempty"`
	PortalClosedAt string `dynamodbav:"portal_closed_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//
// Transition commits write the full quote item conditioned on the status the
// engine validated against, with the audit records in the same transaction.

type QuoteDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	transitionsTable string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		transitionsTable: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) CommitTransition(ctx context.Context, w interfaces.QuoteTransitionWrite) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(w.Quote))
	if err != nil {
		return entities.Quote{}, err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#status = :expected"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":expected": &types.AttributeValueMemberS{Value: string(w.ExpectedStatus)},
			},
		},
	}}
	for _, rec := range w.Records {
		put, err := transitionTransactPut(r.transitionsTable, rec)
		if err != nil {
			return entities.Quote{}, err
		}
		items = append(items, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isStaleTransaction(err) {
			return entities.Quote{}, interfaces.ErrStaleStatus
		}
		return entities.Quote{}, err
	}
	return w.Quote, nil
}

// ListExpiredPortals scans for quotes whose portal is still open past its
// pre-set closing deadline. The sweeper runs on a schedule and the candidate
// set is small, so a filtered scan is acceptable here.
func (r *QuoteDynamoRepository) ListExpiredPortals(ctx context.Context, now time.Time) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("portal_open = :open AND attribute_exists(portal_closed_at) AND portal_closed_at <= :now"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open": &types.AttributeValueMemberBOOL{Value: true},
				":now":  &types.AttributeValueMemberS{Value: formatTime(now)},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return quotes, nil
}

// CommitPortalLock closes the portal, optionally holds the dependent job, and
// appends the audit records, all in one transaction. The quote write is
// conditioned on the portal still being open and the job write on the status
// the sweeper read, so a concurrent change cancels the whole unit.
func (r *QuoteDynamoRepository) CommitPortalLock(ctx context.Context, w interfaces.PortalLockWrite) error {
	quoteAV, err := attributevalue.MarshalMap(toQuoteItem(w.Quote))
	if err != nil {
		return err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                quoteAV,
			ConditionExpression: aws.String("portal_open = :open"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":open": &types.AttributeValueMemberBOOL{Value: true},
			},
		},
	}}

	if w.Job != nil {
		jobAV, err := attributevalue.MarshalMap(toJobItem(*w.Job))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(getenvDefault("JOBS_TABLE", defaultJobsTableName)),
				Item:                jobAV,
				ConditionExpression: aws.String("#status = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberS{Value: string(w.JobExpectedStatus)},
				},
			},
		})
	}

	for _, rec := range w.Records {
		put, err := transitionTransactPut(r.transitionsTable, rec)
		if err != nil {
			return err
		}
		items = append(items, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil && isStaleTransaction(err) {
		return interfaces.ErrStaleStatus
	}
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		TenantID:             q.TenantID,
		ID:                   q.ID,
		Number:               q.Number,
		Status:               string(q.Status),
		CustomerEmail:        q.CustomerEmail,
		ContractorEmail:      q.ContractorEmail,
		SentAt:               formatTimePtr(q.SentAt),
		ViewedAt:             formatTimePtr(q.ViewedAt),
		AcceptedAt:           formatTimePtr(q.AcceptedAt),
		ApprovedAt:           formatTimePtr(q.ApprovedAt),
		DeclinedAt:           formatTimePtr(q.DeclinedAt),
		DeclineReason:        q.DeclineReason,
		DepositVerified:      q.DepositVerified,
		DepositVerifiedAt:    formatTimePtr(q.DepositVerifiedAt),
		DepositPaymentMethod: q.DepositPaymentMethod,
		DepositTransactionID: q.DepositTransactionID,
		PortalOpen:           q.PortalOpen,
		PortalOpenedAt:       formatTimePtr(q.PortalOpenedAt),
		PortalClosedAt:       formatTimePtr(q.PortalClosedAt),
		CreatedAt:            formatTime(q.CreatedAt),
		UpdatedAt:            formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quote{
		ID:                   it.ID,
		TenantID:             it.TenantID,
		Number:               it.Number,
		Status:               entities.QuoteStatus(it.Status),
		CustomerEmail:        it.CustomerEmail,
		ContractorEmail:      it.ContractorEmail,
		SentAt:               parseTimePtr(it.SentAt),
		ViewedAt:             parseTimePtr(it.ViewedAt),
		AcceptedAt:           parseTimePtr(it.AcceptedAt),
		ApprovedAt:           parseTimePtr(it.ApprovedAt),
		DeclinedAt:           parseTimePtr(it.DeclinedAt),
		DeclineReason:        it.DeclineReason,
		DepositVerified:      it.DepositVerified,
		DepositVerifiedAt:    parseTimePtr(it.DepositVerifiedAt),
		DepositPaymentMethod: it.DepositPaymentMethod,
		DepositTransactionID: it.DepositTransactionID,
		PortalOpen:           it.PortalOpen,
		PortalOpenedAt:       parseTimePtr(it.PortalOpenedAt),
		PortalClosedAt:       parseTimePtr(it.PortalClosedAt),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}
