package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func sampleQuote() entities.Quote {
	created := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	return entities.Quote{
		QuoteDraft: entities.QuoteDraft{
			Items:              []entities.QuoteItem{{Type: "wheels", Size: "medium", Quantity: 4, BasePrice: 25}},
			Coating:            entities.Coating{Type: "metallic", Color: "silver", Finish: "gloss", PriceMultiplier: 1.2},
			AdditionalServices: entities.AdditionalServices{Sandblasting: true},
			PromoCode:          "WELCOME10",
			Subtotal:           138,
			DiscountPercent:    10,
			Discount:           13.8,
			Total:              124.2,
			ContactInfo:        entities.ContactInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "5551234567"},
		},
		ID:          "q-1",
		UserID:      "user-1",
		Status:      entities.QuoteStatusPending,
		OrderNumber: "PC-261016-ABCDEF",
		CreatedAt:   created,
		UpdatedAt:   created,
		UpdatedBy:   "user-1",
	}
}

func TestQuoteDynamoRepository_CreateAndGet(t *testing.T) {
	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		put: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.TableName) != "quotes" {
				t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
			}
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("expected create condition, got %q", aws.ToString(in.ConditionExpression))
			}
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		get: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewQuoteDynamoRepository(fake, "")

	if _, err := repo.Create(context.Background(), sampleQuote()); err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	got, err := repo.GetByID(context.Background(), "q-1")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	want := sampleQuote()
	if got.ID != want.ID || got.UserID != want.UserID || got.Status != want.Status || got.OrderNumber != want.OrderNumber {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0] != want.Items[0] {
		t.Fatalf("items mismatch: %+v", got.Items)
	}
	if got.Coating != want.Coating || got.AdditionalServices != want.AdditionalServices || got.ContactInfo != want.ContactInfo {
		t.Fatalf("content mismatch: %+v", got.QuoteDraft)
	}
	if got.Total != want.Total || got.PromoCode != want.PromoCode {
		t.Fatalf("pricing mismatch: %+v", got.QuoteDraft)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at mismatch: %v", got.CreatedAt)
	}
}

func TestQuoteDynamoRepository_GetMissing(t *testing.T) {
	fake := &fakeDynamo{
		get: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	repo := NewQuoteDynamoRepository(fake, "quotes")

	q, err := repo.GetByID(context.Background(), "nope")
	if err != nil || q.ID != "" {
		t.Fatalf("expected zero quote, got %+v %v", q, err)
	}
}

func TestQuoteDynamoRepository_UpdatesAreFieldScoped(t *testing.T) {
	item, err := attributevalue.MarshalMap(toQuoteItem(sampleQuote()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	t.Run("status only touches status", func(t *testing.T) {
		var captured *dynamodb.UpdateItemInput
		fake := &fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				captured = in
				return &dynamodb.UpdateItemOutput{Attributes: item}, nil
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		if _, err := repo.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusApproved, "admin-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expr := aws.ToString(captured.UpdateExpression)
		if expr != "SET #status = :status, #updated_at = :updated_at, #updated_by = :updated_by" {
			t.Fatalf("unexpected update expression %q", expr)
		}
		if v := captured.ExpressionAttributeValues[":updated_by"].(*types.AttributeValueMemberS).Value; v != "admin-1" {
			t.Fatalf("unexpected updated_by %q", v)
		}
		if aws.ToString(captured.ConditionExpression) != "attribute_exists(#id)" {
			t.Fatalf("expected existence condition")
		}
	})

	t.Run("content leaves status and tracking alone", func(t *testing.T) {
		var captured *dynamodb.UpdateItemInput
		fake := &fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				captured = in
				return &dynamodb.UpdateItemOutput{Attributes: item}, nil
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		if _, err := repo.UpdateContent(context.Background(), "q-1", sampleQuote().QuoteDraft, "user-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expr := aws.ToString(captured.UpdateExpression)
		for _, attr := range []string{"#items", "#coating", "#additional_services", "#promo_code", "#total", "#contact_info"} {
			if !strings.Contains(expr, attr+" = ") {
				t.Fatalf("expected %s in %q", attr, expr)
			}
		}
		for _, attr := range []string{"#status", "#tracking_number", "#user_id", "#created_at"} {
			if strings.Contains(expr, attr) {
				t.Fatalf("did not expect %s in %q", attr, expr)
			}
		}
	})

	t.Run("missing quote yields zero value", func(t *testing.T) {
		fake := &fakeDynamo{
			update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		q, err := repo.UpdateTracking(context.Background(), "q-1", "1Z999", "admin-1")
		if err != nil || q.ID != "" {
			t.Fatalf("expected zero quote, got %+v %v", q, err)
		}
	})
}

func TestQuoteDynamoRepository_Delete(t *testing.T) {
	t.Run("existing", func(t *testing.T) {
		fake := &fakeDynamo{
			del: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				return &dynamodb.DeleteItemOutput{}, nil
			},
		}
		ok, err := NewQuoteDynamoRepository(fake, "quotes").Delete(context.Background(), "q-1", nil)
		if err != nil || !ok {
			t.Fatalf("expected delete, got %v %v", ok, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		fake := &fakeDynamo{
			del: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		ok, err := NewQuoteDynamoRepository(fake, "quotes").Delete(context.Background(), "q-1", nil)
		if err != nil || ok {
			t.Fatalf("expected no delete, got %v %v", ok, err)
		}
	})

	t.Run("store error", func(t *testing.T) {
		fake := &fakeDynamo{
			del: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				return nil, errors.New("throttled")
			},
		}
		_, err := NewQuoteDynamoRepository(fake, "quotes").Delete(context.Background(), "q-1", nil)
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled, got %v", err)
		}
	})

	t.Run("status moved", func(t *testing.T) {
		var captured *dynamodb.DeleteItemInput
		fake := &fakeDynamo{
			del: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				captured = in
				return nil, &types.ConditionalCheckFailedException{Item: map[string]types.AttributeValue{
					"id":     &types.AttributeValueMemberS{Value: "q-1"},
					"status": &types.AttributeValueMemberS{Value: "approved"},
				}}
			},
		}
		ok, err := NewQuoteDynamoRepository(fake, "quotes").Delete(context.Background(), "q-1", []entities.QuoteStatus{entities.QuoteStatusPending})
		if !errors.Is(err, interfaces.ErrStatusConflict) || ok {
			t.Fatalf("expected ErrStatusConflict, got %v %v", ok, err)
		}
		if aws.ToString(captured.ConditionExpression) != "attribute_exists(#id) AND #status IN (:expected_0)" {
			t.Fatalf("unexpected condition %q", aws.ToString(captured.ConditionExpression))
		}
	})
}

func TestQuoteDynamoRepository_GuardedUpdates(t *testing.T) {
	item, err := attributevalue.MarshalMap(toQuoteItem(sampleQuote()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	t.Run("condition lists expected statuses", func(t *testing.T) {
		var captured *dynamodb.UpdateItemInput
		fake := &fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				captured = in
				return &dynamodb.UpdateItemOutput{Attributes: item}, nil
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		expected := []entities.QuoteStatus{entities.QuoteStatusPending, entities.QuoteStatusApproved}
		if _, err := repo.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusCancelled, "user-1", expected); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cond := aws.ToString(captured.ConditionExpression)
		if cond != "attribute_exists(#id) AND #status IN (:expected_0, :expected_1)" {
			t.Fatalf("unexpected condition %q", cond)
		}
		if v := captured.ExpressionAttributeValues[":expected_1"].(*types.AttributeValueMemberS).Value; v != "approved" {
			t.Fatalf("unexpected expected_1 %q", v)
		}
		if v := captured.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value; v != "cancelled" {
			t.Fatalf("unexpected status %q", v)
		}
		if captured.ExpressionAttributeNames["#status"] != "status" || captured.ExpressionAttributeNames["#id"] != "id" {
			t.Fatalf("unexpected names %v", captured.ExpressionAttributeNames)
		}
		if captured.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
			t.Fatalf("expected ALL_OLD on condition failure")
		}
	})

	t.Run("content write after approval is a conflict", func(t *testing.T) {
		var captured *dynamodb.UpdateItemInput
		fake := &fakeDynamo{
			update: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				captured = in
				approved := toQuoteItem(sampleQuote())
				approved.Status = string(entities.QuoteStatusApproved)
				old, err := attributevalue.MarshalMap(approved)
				if err != nil {
					t.Fatalf("marshal: %v", err)
				}
				return nil, &types.ConditionalCheckFailedException{Item: old}
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		q, err := repo.UpdateContent(context.Background(), "q-1", sampleQuote().QuoteDraft, "user-1", []entities.QuoteStatus{entities.QuoteStatusPending})
		if !errors.Is(err, interfaces.ErrStatusConflict) || q.ID != "" {
			t.Fatalf("expected ErrStatusConflict, got %+v %v", q, err)
		}
		if !strings.HasSuffix(aws.ToString(captured.ConditionExpression), "#status IN (:expected_0)") {
			t.Fatalf("unexpected condition %q", aws.ToString(captured.ConditionExpression))
		}
	})

	t.Run("missing quote is not a conflict", func(t *testing.T) {
		fake := &fakeDynamo{
			update: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewQuoteDynamoRepository(fake, "quotes")

		q, err := repo.UpdateStatus(context.Background(), "q-1", entities.QuoteStatusCancelled, "user-1", []entities.QuoteStatus{entities.QuoteStatusPending})
		if err != nil || q.ID != "" {
			t.Fatalf("expected zero quote, got %+v %v", q, err)
		}
	})
}

func TestQuoteDynamoRepository_ListByUserIDPagesAndSorts(t *testing.T) {
	older := sampleQuote()
	older.ID = "q-old"
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := sampleQuote()
	newer.ID = "q-new"

	olderAV, _ := attributevalue.MarshalMap(toQuoteItem(older))
	newerAV, _ := attributevalue.MarshalMap(toQuoteItem(newer))

	calls := 0
	fake := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if aws.ToString(in.IndexName) != QuotesUserIDIndex {
				t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
			}
			if calls == 1 {
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{olderAV},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "q-old"}},
				}, nil
			}
			if in.ExclusiveStartKey == nil {
				t.Fatalf("expected continuation key on second page")
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{newerAV}}, nil
		},
	}

	quotes, err := NewQuoteDynamoRepository(fake, "quotes").ListByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(quotes) != 2 || quotes[0].ID != "q-new" || quotes[1].ID != "q-old" {
		t.Fatalf("unexpected result after %d calls: %+v", calls, quotes)
	}
}
