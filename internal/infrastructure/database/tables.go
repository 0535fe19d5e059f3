package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// TableSpec describes a table keyed by a string "id" with one optional
// string-keyed global secondary index.
type TableSpec struct {
	Name         string
	IndexName    string
	IndexKeyAttr string
}

// EnsureTables creates missing tables (on-demand billing) and waits until they
// are active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, ddb *dynamodb.Client, specs []TableSpec, log *zap.Logger) error {
	for _, spec := range specs {
		created, err := createTable(ctx, ddb, spec)
		if err != nil {
			return fmt.Errorf("create table %s: %w", spec.Name, err)
		}
		if !created {
			log.Info("table exists", zap.String("table", spec.Name))
			continue
		}

		waiter := dynamodb.NewTableExistsWaiter(ddb)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.Name)}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", spec.Name, err)
		}
		log.Info("table created", zap.String("table", spec.Name), zap.String("index", spec.IndexName))
	}
	return nil
}

func createTable(ctx context.Context, ddb *dynamodb.Client, spec TableSpec) (bool, error) {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.Name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	if spec.IndexName != "" {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(spec.IndexKeyAttr),
			AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
			IndexName: aws.String(spec.IndexName),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(spec.IndexKeyAttr), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		}}
	}

	_, err := ddb.CreateTable(ctx, in)
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
