package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"moviecredits/credit"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CreditRepository implements credit.Repository on DynamoDB.
type CreditRepository struct {
	store
}

func NewCreditRepository(client *dynamodb.Client, tables Tables) *CreditRepository {
	return &CreditRepository{store: newStore(client, tables)}
}

func (r *CreditRepository) AllCredits(ctx context.Context) ([]credit.Credit, error) {
	if err := validateTables(r.tables); err != nil {
		return nil, err
	}

	var items []creditItem
	if err := r.scan(ctx, r.tables.Credits, "", 0, &items); err != nil {
		return nil, err
	}
	sortCredits(items)

	credits := make([]credit.Credit, len(items))
	for i, item := range items {
		c, err := r.withParents(ctx, item)
		if err != nil {
			return nil, err
		}
		credits[i] = c
	}
	return credits, nil
}

// CreateCredit writes the credit in one transaction with existence checks
// on both parents.
func (r *CreditRepository) CreateCredit(ctx context.Context, c credit.Credit) (credit.Credit, error) {
	if err := validateTables(r.tables); err != nil {
		return credit.Credit{}, err
	}

	item := creditItem{
		ID:      newID(r.now),
		Role:    c.Role,
		MovieID: c.MovieID,
		ActorID: c.ActorID,
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return credit.Credit{}, fmt.Errorf("dynamodb: marshal credit: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{ConditionCheck: &types.ConditionCheck{
				TableName:           aws.String(r.tables.Movies),
				Key:                 idKey(c.MovieID),
				ConditionExpression: aws.String("attribute_exists(id)"),
			}},
			{ConditionCheck: &types.ConditionCheck{
				TableName:           aws.String(r.tables.Actors),
				Key:                 idKey(c.ActorID),
				ConditionExpression: aws.String("attribute_exists(id)"),
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tables.Credits),
				Item:      av,
			}},
		},
	})
	if err != nil {
		var txErr *types.TransactionCanceledException
		if errors.As(err, &txErr) && len(txErr.CancellationReasons) >= 2 {
			if aws.ToString(txErr.CancellationReasons[0].Code) == "ConditionalCheckFailed" {
				return credit.Credit{}, credit.ErrMissingMovie
			}
			if aws.ToString(txErr.CancellationReasons[1].Code) == "ConditionalCheckFailed" {
				return credit.Credit{}, credit.ErrMissingActor
			}
		}
		return credit.Credit{}, fmt.Errorf("dynamodb: put credit: %w", err)
	}

	return r.withParents(ctx, item)
}

func (r *CreditRepository) GetCredit(ctx context.Context, id int64) (credit.Credit, error) {
	if err := validateTables(r.tables); err != nil {
		return credit.Credit{}, err
	}

	var item creditItem
	found, err := r.getItem(ctx, r.tables.Credits, id, &item)
	if err != nil {
		return credit.Credit{}, err
	}
	if !found {
		return credit.Credit{}, credit.ErrNotFound
	}
	return r.withParents(ctx, item)
}

func (r *CreditRepository) DeleteCredit(ctx context.Context, id int64) error {
	if err := validateTables(r.tables); err != nil {
		return err
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tables.Credits),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if conditionFailed(err) {
			return credit.ErrNotFound
		}
		return fmt.Errorf("dynamodb: delete credit: %w", err)
	}
	return nil
}

func (r *CreditRepository) withParents(ctx context.Context, item creditItem) (credit.Credit, error) {
	c := item.toCredit()

	var m movieItem
	found, err := r.getItem(ctx, r.tables.Movies, item.MovieID, &m)
	if err != nil {
		return credit.Credit{}, err
	}
	if found {
		c.Movie = m.ref()
	}

	var a actorItem
	found, err = r.getItem(ctx, r.tables.Actors, item.ActorID, &a)
	if err != nil {
		return credit.Credit{}, err
	}
	if found {
		c.Actor = a.ref()
	}
	return c, nil
}

func sortCredits(items []creditItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}
