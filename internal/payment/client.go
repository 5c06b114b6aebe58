package payment

import (
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Order is the subset of a gateway order the client widget needs.
type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	// KeyID is the public key the browser uses to open the checkout.
	KeyID string `json:"keyId"`
}

// GatewayClient creates remote payment orders. Amounts are in minor units
// (paise).
type GatewayClient interface {
	CreateOrder(amountPaise int64, receipt string) (*Order, error)
}

// RazorpayClient is the production GatewayClient backed by the Razorpay SDK.
type RazorpayClient struct {
	client *razorpay.Client
	keyID  string
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
	}
}

func (c *RazorpayClient) CreateOrder(amountPaise int64, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": "INR",
		"receipt":  receipt,
	}

	resp, err := c.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway order creation failed: %w", err)
	}

	orderID, _ := resp["id"].(string)
	if orderID == "" {
		return nil, fmt.Errorf("gateway returned no order id")
	}

	currency, _ := resp["currency"].(string)
	if currency == "" {
		currency = "INR"
	}

	return &Order{
		OrderID:  orderID,
		Amount:   amountPaise,
		Currency: currency,
		KeyID:    c.keyID,
	}, nil
}
