package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
)

// DynamoStore is the DynamoDB-backed Store implementation used in Lambda
// deployments. Tables are keyed by the "id" string attribute; the product
// table additionally carries a GSI on "shop_id".
type DynamoStore struct {
	client *dynamodb.Client
	logger *logrus.Logger
}

// NewDynamoStore creates a DynamoDB store. An empty endpoint uses the
// regional AWS endpoint; a non-empty one targets a local emulator.
func NewDynamoStore(ctx context.Context, region, endpoint string, logger *logrus.Logger) (*DynamoStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &DynamoStore{client: client, logger: logger}, nil
}

// Put implements Store.Put.
func (d *DynamoStore) Put(ctx context.Context, table string, item Item) error {
	av, err := attributevalue.MarshalMap(map[string]any(item))
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put item in %s: %w", table, err)
	}
	return nil
}

// Get implements Store.Get.
func (d *DynamoStore) Get(ctx context.Context, table, id string) (Item, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       keyAttr(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get item %s from %s: %w", id, table, err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return unmarshalItem(out.Item)
}

// Update implements Store.Update. Only the given fields are written; the
// full post-update item is requested back with ReturnValues ALL_NEW.
func (d *DynamoStore) Update(ctx context.Context, table, id string, fields Item) (Item, error) {
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	sets := make([]string, 0, len(fields))

	i := 0
	for field, value := range fields {
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %s: %w", field, err)
		}
		namePh := fmt.Sprintf("#f%d", i)
		valuePh := fmt.Sprintf(":v%d", i)
		names[namePh] = field
		values[valuePh] = av
		sets = append(sets, namePh+" = "+valuePh)
		i++
	}

	out, err := d.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       keyAttr(id),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return nil, fmt.Errorf("update item %s in %s: %w", id, table, err)
	}
	return unmarshalItem(out.Attributes)
}

// Delete implements Store.Delete. The removed item is requested back with
// ReturnValues ALL_OLD; deleting an absent key returns (nil, nil).
func (d *DynamoStore) Delete(ctx context.Context, table, id string) (Item, error) {
	out, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          keyAttr(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return nil, fmt.Errorf("delete item %s from %s: %w", id, table, err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}
	return unmarshalItem(out.Attributes)
}

// Scan implements Store.Scan. The full table is returned in one pass;
// pagination of oversized result sets is out of scope.
func (d *DynamoStore) Scan(ctx context.Context, table string) ([]Item, error) {
	out, err := d.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return unmarshalItems(out.Items)
}

// QueryByIndex implements Store.QueryByIndex via a Query on the named GSI.
func (d *DynamoStore) QueryByIndex(ctx context.Context, table, index, field string, value any) ([]Item, error) {
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("marshal index value: %w", err)
	}

	out, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(index),
		ExpressionAttributeNames:  map[string]string{"#f": field},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": av},
		KeyConditionExpression:    aws.String("#f = :v"),
	})
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", table, index, err)
	}
	return unmarshalItems(out.Items)
}

// Close implements Store.Close.
func (d *DynamoStore) Close() error {
	return nil
}

func keyAttr(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func unmarshalItem(av map[string]types.AttributeValue) (Item, error) {
	var item Item
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	return item, nil
}

func unmarshalItems(avs []map[string]types.AttributeValue) ([]Item, error) {
	items := make([]Item, 0, len(avs))
	for _, av := range avs {
		item, err := unmarshalItem(av)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
