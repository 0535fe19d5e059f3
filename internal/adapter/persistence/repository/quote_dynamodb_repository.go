package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	QuotesUserIDIndex      = "user_id-index"
)

type quoteLineItem struct {
	Type      string  `dynamodbav:"type"`
	Size      string  `dynamodbav:"size"`
	Quantity  int     `dynamodbav:"quantity"`
	BasePrice float64 `dynamodbav:"base_price"`
}

type quoteCoatingItem struct {
	Type            string  `dynamodbav:"type"`
	Color           string  `dynamodbav:"color"`
	Finish          string  `dynamodbav:"finish"`
	PriceMultiplier float64 `dynamodbav:"price_multiplier"`
}

type quoteServicesItem struct {
	Sandblasting bool `dynamodbav:"sandblasting"`
	Priming      bool `dynamodbav:"priming"`
	RushOrder    bool `dynamodbav:"rush_order"`
}

type quoteContactItem struct {
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
	Phone string `dynamodbav:"phone"`
	Notes string `dynamodbav:"notes,omitempty"`
}

// quoteContent is the attribute group written by UpdateContent.
type quoteContent struct {
	Items              []quoteLineItem   `dynamodbav:"items"`
	Coating            quoteCoatingItem  `dynamodbav:"coating"`
	AdditionalServices quoteServicesItem `dynamodbav:"additional_services"`
	PromoCode          string            `dynamodbav:"promo_code"`
	Subtotal           float64           `dynamodbav:"subtotal"`
	DiscountPercent    float64           `dynamodbav:"discount_percent"`
	Discount           float64           `dynamodbav:"discount"`
	Total              float64           `dynamodbav:"total"`
	ContactInfo        quoteContactItem  `dynamodbav:"contact_info"`
}

type quoteItem struct {
	Items              []quoteLineItem   `dynamodbav:"items"`
	Coating            quoteCoatingItem  `dynamodbav:"coating"`
	AdditionalServices quoteServicesItem `dynamodbav:"additional_services"`
	PromoCode          string            `dynamodbav:"promo_code,omitempty"`
	Subtotal           float64           `dynamodbav:"subtotal"`
	DiscountPercent    float64           `dynamodbav:"discount_percent"`
	Discount           float64           `dynamodbav:"discount"`
	Total              float64           `dynamodbav:"total"`
	ContactInfo        quoteContactItem  `dynamodbav:"contact_info"`

	ID             string `dynamodbav:"id"`
	UserID         string `dynamodbav:"user_id"`
	Status         string `dynamodbav:"status"`
	OrderNumber    string `dynamodbav:"order_number"`
	TrackingNumber string `dynamodbav:"tracking_number,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	UpdatedBy      string `dynamodbav:"updated_by"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Updates are field scoped: status, tracking and content each own a disjoint
// set of attributes, so concurrent writers to different groups never clobber
// each other. Inside one group the last write wins.
type QuoteDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
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

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            quoteKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuote(out.Item)
}

// ListByUserID returns the owner's quotes, newest first.
func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	var (
		quotes []entities.Quote
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(QuotesUserIDIndex),
			KeyConditionExpression: aws.String("user_id = :uid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":uid": &types.AttributeValueMemberS{Value: userID},
			},
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		page, err := decodeQuotes(out.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	sortNewestFirst(quotes)
	return quotes, nil
}

// ListAll scans the whole table, newest first. Admin listing only.
func (r *QuoteDynamoRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	var (
		quotes []entities.Quote
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
		})
		if err != nil {
			return nil, err
		}
		page, err := decodeQuotes(out.Items)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	sortNewestFirst(quotes)
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, updatedBy string, expected []entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, updatedBy, expected, func() (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		return expr, vals, map[string]string{"#status": "status"}, nil
	})
}

func (r *QuoteDynamoRepository) UpdateTracking(ctx context.Context, id string, trackingNumber string, updatedBy string) (entities.Quote, error) {
	return r.update(ctx, id, updatedBy, nil, func() (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #tracking_number = :tracking_number"
		vals := map[string]types.AttributeValue{
			":tracking_number": &types.AttributeValueMemberS{Value: trackingNumber},
		}
		return expr, vals, map[string]string{"#tracking_number": "tracking_number"}, nil
	})
}

func (r *QuoteDynamoRepository) UpdateContent(ctx context.Context, id string, content entities.QuoteDraft, updatedBy string, expected []entities.QuoteStatus) (entities.Quote, error) {
	return r.update(ctx, id, updatedBy, expected, func() (string, map[string]types.AttributeValue, map[string]string, error) {
		av, err := attributevalue.MarshalMap(toQuoteContent(content))
		if err != nil {
			return "", nil, nil, err
		}
		attrs := make([]string, 0, len(av))
		for name := range av {
			attrs = append(attrs, name)
		}
		sort.Strings(attrs)

		expr := "SET "
		vals := make(map[string]types.AttributeValue, len(av))
		names := make(map[string]string, len(av))
		for i, name := range attrs {
			if i > 0 {
				expr += ", "
			}
			expr += "#" + name + " = :" + name
			vals[":"+name] = av[name]
			names["#"+name] = name
		}
		return expr, vals, names, nil
	})
}

// Delete removes a quote. deleted is false when no such quote existed.
func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string, expected []entities.QuoteStatus) (bool, error) {
	cond, values, names := statusCondition(expected)
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                           aws.String(r.tableName),
		Key:                                 quoteKey(id),
		ConditionExpression:                 aws.String(cond),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return false, interfaces.ErrStatusConflict
			}
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// statusCondition requires the item to exist and, when expected is set, to
// still be in one of those statuses. values is nil without a status clause.
func statusCondition(expected []entities.QuoteStatus) (string, map[string]types.AttributeValue, map[string]string) {
	names := map[string]string{"#id": "id"}
	if len(expected) == 0 {
		return "attribute_exists(#id)", nil, names
	}
	names["#status"] = "status"
	values := make(map[string]types.AttributeValue, len(expected))
	placeholders := make([]string, 0, len(expected))
	for i, s := range expected {
		key := ":expected_" + strconv.Itoa(i)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
		placeholders = append(placeholders, key)
	}
	return "attribute_exists(#id) AND #status IN (" + strings.Join(placeholders, ", ") + ")", values, names
}

// update applies one attribute group and stamps updated_at/updated_by. A
// missing quote yields the zero Quote; a quote outside expected yields
// ErrStatusConflict.
func (r *QuoteDynamoRepository) update(
	ctx context.Context,
	id string,
	updatedBy string,
	expected []entities.QuoteStatus,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) (entities.Quote, error) {
	updateExpr, values, names, err := build()
	if err != nil {
		return entities.Quote{}, err
	}
	updateExpr += ", #updated_at = :updated_at, #updated_by = :updated_by"
	values[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(r.now())}
	values[":updated_by"] = &types.AttributeValueMemberS{Value: updatedBy}

	cond, condValues, condNames := statusCondition(expected)
	for k, v := range condValues {
		values[k] = v
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       quoteKey(id),
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: mergeNames(names, condNames, map[string]string{
			"#updated_at": "updated_at",
			"#updated_by": "updated_by",
		}),
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			if len(cfe.Item) > 0 {
				return entities.Quote{}, interfaces.ErrStatusConflict
			}
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	return decodeQuote(out.Attributes)
}

func quoteKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func decodeQuote(raw map[string]types.AttributeValue) (entities.Quote, error) {
	var it quoteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func decodeQuotes(raw []map[string]types.AttributeValue) ([]entities.Quote, error) {
	out := make([]entities.Quote, 0, len(raw))
	for _, item := range raw {
		q, err := decodeQuote(item)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}

func sortNewestFirst(quotes []entities.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
}

func toQuoteContent(d entities.QuoteDraft) quoteContent {
	items := make([]quoteLineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, quoteLineItem{Type: it.Type, Size: it.Size, Quantity: it.Quantity, BasePrice: it.BasePrice})
	}
	return quoteContent{
		Items: items,
		Coating: quoteCoatingItem{
			Type:            d.Coating.Type,
			Color:           d.Coating.Color,
			Finish:          d.Coating.Finish,
			PriceMultiplier: d.Coating.PriceMultiplier,
		},
		AdditionalServices: quoteServicesItem{
			Sandblasting: d.AdditionalServices.Sandblasting,
			Priming:      d.AdditionalServices.Priming,
			RushOrder:    d.AdditionalServices.RushOrder,
		},
		PromoCode:       d.PromoCode,
		Subtotal:        d.Subtotal,
		DiscountPercent: d.DiscountPercent,
		Discount:        d.Discount,
		Total:           d.Total,
		ContactInfo: quoteContactItem{
			Name:  d.ContactInfo.Name,
			Email: d.ContactInfo.Email,
			Phone: d.ContactInfo.Phone,
			Notes: d.ContactInfo.Notes,
		},
	}
}

func fromQuoteContent(c quoteContent) entities.QuoteDraft {
	items := make([]entities.QuoteItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entities.QuoteItem{Type: it.Type, Size: it.Size, Quantity: it.Quantity, BasePrice: it.BasePrice})
	}
	return entities.QuoteDraft{
		Items: items,
		Coating: entities.Coating{
			Type:            c.Coating.Type,
			Color:           c.Coating.Color,
			Finish:          c.Coating.Finish,
			PriceMultiplier: c.Coating.PriceMultiplier,
		},
		AdditionalServices: entities.AdditionalServices{
			Sandblasting: c.AdditionalServices.Sandblasting,
			Priming:      c.AdditionalServices.Priming,
			RushOrder:    c.AdditionalServices.RushOrder,
		},
		PromoCode:       c.PromoCode,
		Subtotal:        c.Subtotal,
		DiscountPercent: c.DiscountPercent,
		Discount:        c.Discount,
		Total:           c.Total,
		ContactInfo: entities.ContactInfo{
			Name:  c.ContactInfo.Name,
			Email: c.ContactInfo.Email,
			Phone: c.ContactInfo.Phone,
			Notes: c.ContactInfo.Notes,
		},
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	c := toQuoteContent(q.QuoteDraft)
	return quoteItem{
		Items:              c.Items,
		Coating:            c.Coating,
		AdditionalServices: c.AdditionalServices,
		PromoCode:          c.PromoCode,
		Subtotal:           c.Subtotal,
		DiscountPercent:    c.DiscountPercent,
		Discount:           c.Discount,
		Total:              c.Total,
		ContactInfo:        c.ContactInfo,

		ID:             q.ID,
		UserID:         q.UserID,
		Status:         string(q.Status),
		OrderNumber:    q.OrderNumber,
		TrackingNumber: q.TrackingNumber,
		CreatedAt:      formatTime(q.CreatedAt),
		UpdatedAt:      formatTime(q.UpdatedAt),
		UpdatedBy:      q.UpdatedBy,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	content := fromQuoteContent(quoteContent{
		Items:              it.Items,
		Coating:            it.Coating,
		AdditionalServices: it.AdditionalServices,
		PromoCode:          it.PromoCode,
		Subtotal:           it.Subtotal,
		DiscountPercent:    it.DiscountPercent,
		Discount:           it.Discount,
		Total:              it.Total,
		ContactInfo:        it.ContactInfo,
	})
	return entities.Quote{
		QuoteDraft:     content,
		ID:             it.ID,
		UserID:         it.UserID,
		Status:         entities.QuoteStatus(it.Status),
		OrderNumber:    it.OrderNumber,
		TrackingNumber: it.TrackingNumber,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		UpdatedBy:      it.UpdatedBy,
	}
}
