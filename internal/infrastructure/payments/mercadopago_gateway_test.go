package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMockCharge_ReflectsOrder(t *testing.T) {
	at := time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC)
	g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return at }}

	id, status, raw, err := g.CreatePayment(context.Background(),
		json.RawMessage(`{"transaction_amount":320.5,"external_reference":"os-7","description":"OS #7","payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}
	if want := "mock-os-7-" + strconv.FormatInt(at.UnixNano(), 10); id != want {
		t.Fatalf("expected id %q, got %q", want, id)
	}

	var got mockChargeResponse
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	want := mockChargeResponse{
		ID:                id,
		Status:            "approved",
		StatusDetail:      "accredited",
		ExternalReference: "os-7",
		TransactionAmount: 320.5,
		Description:       "OS #7",
		PaymentMethodID:   "pix",
		DateCreated:       at,
		DateApproved:      at,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestCreatePayment_RejectsChargeWithoutOrder(t *testing.T) {
	g := &MercadoPagoGateway{mockMode: true}
	cases := map[string]string{
		"no reference":  `{"transaction_amount":100}`,
		"blank ref":     `{"transaction_amount":100,"external_reference":"  "}`,
		"zero amount":   `{"external_reference":"os-1","transaction_amount":0}`,
		"not an object": `[1,2]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(payload))
			if !errors.Is(err, ErrInvalidCharge) {
				t.Fatalf("expected ErrInvalidCharge, got %v", err)
			}
		})
	}
}

func TestCreatePaymentWithoutClient(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}

func TestIsMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", " YES ")
	if !IsMockEnabled() {
		t.Fatalf("expected mock enabled")
	}
	t.Setenv("MERCADOPAGO_MOCK", "off")
	if IsMockEnabled() {
		t.Fatalf("expected mock disabled")
	}
}
