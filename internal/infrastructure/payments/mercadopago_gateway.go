package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidCharge                   = errors.New("charge needs external_reference and a positive transaction_amount")
)

// orderCharge is the part of the Mercado Pago request that ties a charge to
// a service order. The rest of the payload is forwarded untouched.
type orderCharge struct {
	ExternalReference string  `json:"external_reference"`
	TransactionAmount float64 `json:"transaction_amount"`
	Description       string  `json:"description"`
	PaymentMethodID   string  `json:"payment_method_id"`
}

func parseCharge(payload json.RawMessage) (orderCharge, error) {
	var c orderCharge
	if err := json.Unmarshal(payload, &c); err != nil {
		return orderCharge{}, fmt.Errorf("%w: %v", ErrInvalidCharge, err)
	}
	c.ExternalReference = strings.TrimSpace(c.ExternalReference)
	if c.ExternalReference == "" || c.TransactionAmount <= 0 {
		return orderCharge{}, ErrInvalidCharge
	}
	return c, nil
}

// MercadoPagoGateway charges service orders through Mercado Pago. In mock
// mode no request leaves the process and every charge is approved.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
	now      func() time.Time
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	log := zap.L()
	if IsMockEnabled() {
		log.Info("[payment][gateway] mock mode; charges are approved locally")
		return &MercadoPagoGateway{mockMode: true, now: time.Now}, nil
	}

	if accessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("[payment][gateway] sdk config failed", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client ready")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

// CreatePayment charges one service order. The payload must carry the order
// id in external_reference and the approved value in transaction_amount.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || (!g.mockMode && g.client == nil) {
		zap.L().Error("[payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	charge, err := parseCharge(requestPayload)
	if err != nil {
		zap.L().Warn("[payment][gateway] rejected charge", zap.Error(err))
		return "", "", nil, err
	}
	log := zap.L().With(
		zap.String("order_id", charge.ExternalReference),
		zap.Float64("amount", charge.TransactionAmount),
	)

	if g.mockMode {
		return g.approveLocally(charge, log)
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Warn("[payment][gateway] payload does not fit the payment request", zap.Error(err))
		return "", "", nil, err
	}

	log.Info("[payment][gateway] charging order", zap.String("payment_method_id", charge.PaymentMethodID))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("[payment][gateway] charge failed", zap.Error(err))
		return "", "", nil, err
	}
	if resp.ExternalReference != "" && resp.ExternalReference != charge.ExternalReference {
		log.Warn("[payment][gateway] provider echoed a different order", zap.String("provider_reference", resp.ExternalReference))
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	log.Info("[payment][gateway] order charged",
		zap.String("provider_payment_id", id),
		zap.String("provider_status", resp.Status),
	)
	return id, resp.Status, raw, nil
}

// mockChargeResponse mirrors the fields of a Mercado Pago payment the order
// payment flow reads back.
type mockChargeResponse struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail"`
	ExternalReference string    `json:"external_reference"`
	TransactionAmount float64   `json:"transaction_amount"`
	Description       string    `json:"description,omitempty"`
	PaymentMethodID   string    `json:"payment_method_id,omitempty"`
	DateCreated       time.Time `json:"date_created"`
	DateApproved      time.Time `json:"date_approved"`
}

func (g *MercadoPagoGateway) approveLocally(charge orderCharge, log *zap.Logger) (string, string, json.RawMessage, error) {
	clock := g.now
	if clock == nil {
		clock = time.Now
	}
	at := clock().UTC()
	resp := mockChargeResponse{
		ID:                fmt.Sprintf("mock-%s-%d", charge.ExternalReference, at.UnixNano()),
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: charge.ExternalReference,
		TransactionAmount: charge.TransactionAmount,
		Description:       charge.Description,
		PaymentMethodID:   charge.PaymentMethodID,
		DateCreated:       at,
		DateApproved:      at,
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	log.Info("[payment][gateway] mock charge approved", zap.String("provider_payment_id", resp.ID))
	return resp.ID, resp.Status, raw, nil
}

// IsMockEnabled reads PAYMENT_GATEWAY_MOCK and MERCADOPAGO_MOCK.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
