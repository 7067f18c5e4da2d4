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

const (
	defaultJobsTableName = "jobs"
	jobsQuoteIDIndex     = "quote_id-index"
)

type jobItem struct {
	TenantID string `dynamodbav:"tenant_id"`
	ID       string `dynamodbav:"id"`
	QuoteID  string `dynamodbav:"quote_id"`
	Status   string `dynamodbav:"status"`

	ScheduledStartDate string `dynamodbav:"scheduled_start_date,omitempty"`
	ScheduledEndDate   string `dynamodbav:"scheduled_end_date,omitempty"`
	ActualStartDate    string `dynamodbav:"actual_start_date,omitempty"`
	ActualEndDate      string `dynamodbav:"actual_end_date,omitempty"`

	DepositPaid   bool   `dynamodbav:"deposit_paid"`
	DepositPaidAt string `dynamodbav:"deposit_paid_at,omitempty"`

	CustomerSelectionsComplete bool   `dynamodbav:"customer_selections_complete"`
	ContractorNotes            string `dynamodbav:"contractor_notes,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: tenant_id (string)
//   - SK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// One job per quote is enforced at the use-case layer; the GSI resolves the
// quote-to-job lookup used by the expiry sweeper.

type JobDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	transitionsTable string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("JOBS_TABLE", defaultJobsTableName),
		transitionsTable: getenvDefault("TRANSITIONS_TABLE", defaultTransitionsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, tenantID, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) GetByQuoteID(ctx context.Context, tenantID, quoteID string) (entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		FilterExpression:       aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Items) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) CommitTransition(ctx context.Context, w interfaces.JobTransitionWrite) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(w.Job))
	if err != nil {
		return entities.Job{}, err
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
			return entities.Job{}, err
		}
		items = append(items, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isStaleTransaction(err) {
			return entities.Job{}, interfaces.ErrStaleStatus
		}
		return entities.Job{}, err
	}
	return w.Job, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		TenantID:                   j.TenantID,
		ID:                         j.ID,
		QuoteID:                    j.QuoteID,
		Status:                     string(j.Status),
		ScheduledStartDate:         formatTimePtr(j.ScheduledStartDate),
		ScheduledEndDate:           formatTimePtr(j.ScheduledEndDate),
		ActualStartDate:            formatTimePtr(j.ActualStartDate),
		ActualEndDate:              formatTimePtr(j.ActualEndDate),
		DepositPaid:                j.DepositPaid,
		DepositPaidAt:              formatTimePtr(j.DepositPaidAt),
		CustomerSelectionsComplete: j.CustomerSelectionsComplete,
		ContractorNotes:            j.ContractorNotes,
		CreatedAt:                  formatTime(j.CreatedAt),
		UpdatedAt:                  formatTime(j.UpdatedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Job{
		ID:                         it.ID,
		TenantID:                   it.TenantID,
		QuoteID:                    it.QuoteID,
		Status:                     entities.JobStatus(it.Status),
		ScheduledStartDate:         parseTimePtr(it.ScheduledStartDate),
		ScheduledEndDate:           parseTimePtr(it.ScheduledEndDate),
		ActualStartDate:            parseTimePtr(it.ActualStartDate),
		ActualEndDate:              parseTimePtr(it.ActualEndDate),
		DepositPaid:                it.DepositPaid,
		DepositPaidAt:              parseTimePtr(it.DepositPaidAt),
		CustomerSelectionsComplete: it.CustomerSelectionsComplete,
		ContractorNotes:            it.ContractorNotes,
		CreatedAt:                  createdAt,
		UpdatedAt:                  updatedAt,
	}
}
