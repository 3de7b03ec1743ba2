package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"moviecredits/credit"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxTransactItems is the DynamoDB limit per TransactWriteItems call.
const maxTransactItems = 100

type movieItem struct {
	ID          int64  `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Genre       string `dynamodbav:"genre"`
	Image       string `dynamodbav:"image"`
	Description string `dynamodbav:"description"`
	Rating      int    `dynamodbav:"rating"`
}

func (i movieItem) ref() *credit.MovieRef {
	return &credit.MovieRef{
		ID:          i.ID,
		Title:       i.Title,
		Genre:       i.Genre,
		Image:       i.Image,
		Description: i.Description,
		Rating:      i.Rating,
	}
}

type actorItem struct {
	ID   int64  `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
	Age  int    `dynamodbav:"age"`
}

func (i actorItem) ref() *credit.ActorRef {
	return &credit.ActorRef{ID: i.ID, Name: i.Name, Age: i.Age}
}

type creditItem struct {
	ID      int64  `dynamodbav:"id"`
	Role    string `dynamodbav:"role"`
	MovieID int64  `dynamodbav:"movie_id"`
	ActorID int64  `dynamodbav:"actor_id"`
}

func (i creditItem) toCredit() credit.Credit {
	return credit.Credit{
		ID:      i.ID,
		Role:    i.Role,
		MovieID: i.MovieID,
		ActorID: i.ActorID,
	}
}

func idKey(id int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
	}
}

func newID(now func() time.Time) int64 {
	return now().UnixNano()
}

// store holds what every repository needs: the client, the tables and
// the helpers that read across them.
type store struct {
	client *dynamodb.Client
	tables Tables
	now    func() time.Time
}

func newStore(client *dynamodb.Client, tables Tables) store {
	return store{
		client: client,
		tables: tables,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// getItem loads one item into out and reports whether it exists.
func (s store) getItem(ctx context.Context, table string, id int64, out interface{}) (bool, error) {
	resp, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("dynamodb: get %s item: %w", table, err)
	}
	if len(resp.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(resp.Item, out); err != nil {
		return false, fmt.Errorf("dynamodb: unmarshal %s item: %w", table, err)
	}
	return true, nil
}

// scan reads a whole table, optionally filtered on field = id, into out
// which must point to a slice.
func (s store) scan(ctx context.Context, table, field string, id int64, out interface{}) error {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(table),
		ConsistentRead: aws.Bool(true),
	}
	if field != "" {
		input.FilterExpression = aws.String("#f = :id")
		input.ExpressionAttributeNames = map[string]string{"#f": field}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
		}
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("dynamodb: scan %s: %w", table, err)
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("dynamodb: unmarshal %s: %w", table, err)
	}
	return nil
}

func (s store) put(ctx context.Context, table string, item interface{}, condition string) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dynamodb: marshal %s item: %w", table, err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}
	if condition != "" {
		input.ConditionExpression = aws.String(condition)
	}

	_, err = s.client.PutItem(ctx, input)
	return err
}

// creditsOf returns the credits whose field equals id, sorted by id.
func (s store) creditsOf(ctx context.Context, field string, id int64) ([]creditItem, error) {
	var items []creditItem
	if err := s.scan(ctx, s.tables.Credits, field, id, &items); err != nil {
		return nil, err
	}
	sortCredits(items)
	return items, nil
}

// deleteWithCredits removes the parent row together with the credits
// whose field points at it. The parent delete is conditional and goes in
// the first batch, so a missing parent writes nothing. Once the parent is
// gone CreateCredit's condition check fails, so re-scanning until no
// credit is left also catches credits created after the first scan.
func (s store) deleteWithCredits(ctx context.Context, table, field string, id int64, notFound error) error {
	credits, err := s.creditsOf(ctx, field, id)
	if err != nil {
		return err
	}

	writes := []types.TransactWriteItem{{
		Delete: &types.Delete{
			TableName:           aws.String(table),
			Key:                 idKey(id),
			ConditionExpression: aws.String("attribute_exists(id)"),
		},
	}}
	for {
		writes = append(writes, creditDeletes(s.tables.Credits, credits)...)
		if err := s.transactWrite(ctx, writes); err != nil {
			if conditionFailed(err) {
				return notFound
			}
			return fmt.Errorf("dynamodb: delete %s item: %w", table, err)
		}

		credits, err = s.creditsOf(ctx, field, id)
		if err != nil {
			return err
		}
		if len(credits) == 0 {
			return nil
		}
		writes = writes[:0]
	}
}

func creditDeletes(table string, credits []creditItem) []types.TransactWriteItem {
	writes := make([]types.TransactWriteItem, len(credits))
	for i, c := range credits {
		writes[i] = types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(table),
				Key:       idKey(c.ID),
			},
		}
	}
	return writes
}

// transactWrite sends writes in batches of maxTransactItems.
func (s store) transactWrite(ctx context.Context, writes []types.TransactWriteItem) error {
	for start := 0; start < len(writes); start += maxTransactItems {
		end := start + maxTransactItems
		if end > len(writes) {
			end = len(writes)
		}
		_, err := s.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: writes[start:end],
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func conditionFailed(err error) bool {
	var condErr *types.ConditionalCheckFailedException
	if errors.As(err, &condErr) {
		return true
	}
	var txErr *types.TransactionCanceledException
	if errors.As(err, &txErr) {
		for _, reason := range txErr.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
