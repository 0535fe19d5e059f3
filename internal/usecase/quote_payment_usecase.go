package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"coatingshop/internal/domain/entities"
	"coatingshop/internal/domain/pricing"
	"coatingshop/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrQuoteNotApproved               = errors.New("quote not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings tunes the payment flow. In mock mode the gateway is never
// called and every payment is approved on the spot.
type PaymentSettings struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IQuotePaymentUseCase charges approved quotes.
type IQuotePaymentUseCase interface {
	Pay(ctx context.Context, actor Actor, quoteID string, payload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, actor Actor, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, actor Actor, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	settings  PaymentSettings
	log       *zap.Logger
	now       func() time.Time
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings, log *zap.Logger) *QuotePaymentUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuotePaymentUseCase{
		repo:      repo,
		quoteRepo: quoteRepo,
		gateway:   gateway,
		settings:  settings,
		log:       log.Named("payment"),
		now:       time.Now,
	}
}

func (u *QuotePaymentUseCase) Pay(ctx context.Context, actor Actor, quoteID string, payload json.RawMessage) (entities.QuotePayment, error) {
	if !actor.Authenticated() {
		return entities.QuotePayment{}, unauthenticated("pay_quote")
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.settings.Mock {
			return entities.QuotePayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.settings.Mock {
		return entities.QuotePayment{}, errors.New("payment gateway not configured")
	}

	q, err := u.loadQuote(ctx, actor, quoteID, "pay_quote")
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if q.Status != entities.QuoteStatusApproved {
		u.log.Info("quote not approved for payment", zap.String("quote_id", q.ID), zap.String("status", string(q.Status)))
		return entities.QuotePayment{}, ErrQuoteNotApproved
	}
	amount := pricing.Round2(q.Total)

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.settings.Mock {
			return entities.QuotePayment{}, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}
	if !u.settings.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return entities.QuotePayment{}, ErrInvalidPaymentPayload
		}
		u.mapSandboxPayer(req)
		u.ensurePayerDefaults(req)
		if !hasPayer(req) {
			return entities.QuotePayment{}, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = q.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Powder coating order %s", q.OrderNumber)
	}
	// The stored quote total is authoritative.
	req["transaction_amount"] = amount

	var (
		providerID     string
		providerStatus string
		providerResp   json.RawMessage
	)
	if u.settings.Mock {
		providerID, providerStatus, providerResp, err = u.mockPayment(req)
		if err != nil {
			return entities.QuotePayment{}, err
		}
		u.log.Info("mock payment approved", zap.String("quote_id", q.ID))
	} else {
		body, err := json.Marshal(req)
		if err != nil {
			return entities.QuotePayment{}, err
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, body)
		if err != nil {
			u.log.Error("payment gateway failed", zap.String("quote_id", q.ID), zap.Error(err))
			return entities.QuotePayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", zap.String("quote_id", q.ID), zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:                 providerID,
		QuoteID:            q.ID,
		Amount:             amount,
		Date:               u.now().UTC(),
		Status:             paymentStatus(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("payment create failed", zap.String("quote_id", q.ID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	u.log.Info("payment recorded",
		zap.String("quote_id", q.ID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.Float64("amount", created.Amount),
	)
	return created, nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, actor Actor, id string) (entities.QuotePayment, error) {
	if !actor.Authenticated() {
		return entities.QuotePayment{}, unauthenticated("get_payment")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrPaymentNotFound
	}
	if _, err := u.loadQuote(ctx, actor, p.QuoteID, "get_payment"); err != nil {
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, actor Actor, quoteID string) ([]entities.QuotePayment, error) {
	if !actor.Authenticated() {
		return nil, unauthenticated("list_payments")
	}
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	if _, err := u.loadQuote(ctx, actor, quoteID, "list_payments"); err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *QuotePaymentUseCase) loadQuote(ctx context.Context, actor Actor, id, op string) (entities.Quote, error) {
	q, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		u.log.Error("quote load failed", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if err := authorizeRead(actor, q, op); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuotePaymentUseCase) mockPayment(req map[string]any) (string, string, json.RawMessage, error) {
	now := u.now().UTC()
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email
// when neither payer.id nor payer.email was sent.
func (u *QuotePaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.settings.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// mapSandboxPayer swaps the configured sandbox user id for its email, which
// the sandbox accepts more reliably.
func (u *QuotePaymentUseCase) mapSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.settings.sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
