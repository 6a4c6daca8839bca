package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/borgestech/storefront-api/services"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const requestTimeout = 30 * time.Second

// Gateway talks to the payment provider's REST API. Every call carries a
// hard timeout; a timed-out capture surfaces as ErrTransient and is left to
// the shopper to resubmit, since an automatic retry could double-charge.
type Gateway struct {
	client  *resty.Client
	baseURL string
}

func NewGateway() *Gateway {
	baseURL := os.Getenv("PAYMENT_API_URL")
	if baseURL == "" {
		baseURL = "https://api.payments.borgestech.com/v3"
	}
	return &Gateway{
		client:  resty.New().SetTimeout(requestTimeout),
		baseURL: baseURL,
	}
}

func (g *Gateway) accessToken(ctx context.Context) (string, error) {
	consumerKey := os.Getenv("PAYMENT_CONSUMER_KEY")
	consumerSecret := os.Getenv("PAYMENT_CONSUMER_SECRET")

	if consumerKey == "" || consumerSecret == "" {
		return "", fmt.Errorf("payment consumer credentials are not set")
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{
			"consumer_key":    consumerKey,
			"consumer_secret": consumerSecret,
		}).
		Post(g.baseURL + "/api/Auth/RequestToken")

	if err != nil {
		return "", fmt.Errorf("%w: %v", services.ErrTransient, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("token request failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	var response map[string]any
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	token, ok := response["token"].(string)
	if !ok || token == "" {
		return "", fmt.Errorf("token not found in response")
	}
	return token, nil
}

// Capture fetches the authoritative result of a transaction. The caller
// treats the reported amount as untrusted until it has been checked
// against the order total.
func (g *Gateway) Capture(ctx context.Context, transactionID string) (services.PaymentCapture, error) {
	token, err := g.accessToken(ctx)
	if err != nil {
		return services.PaymentCapture{}, err
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Accept", "application/json").
		SetQueryParam("transactionId", transactionID).
		Get(g.baseURL + "/api/Transactions/GetTransactionStatus")

	if err != nil {
		return services.PaymentCapture{}, fmt.Errorf("%w: %v", services.ErrTransient, err)
	}
	if resp.StatusCode() != 200 {
		return services.PaymentCapture{}, fmt.Errorf("transaction lookup failed with status %d: %s",
			resp.StatusCode(), string(resp.Body()))
	}

	var status struct {
		TransactionID string          `json:"transaction_id"`
		Amount        decimal.Decimal `json:"amount"`
		StatusDesc    string          `json:"payment_status_description"`
	}
	if err := json.Unmarshal(resp.Body(), &status); err != nil {
		return services.PaymentCapture{}, fmt.Errorf("invalid response from payment gateway: %w", err)
	}

	return services.PaymentCapture{
		TransactionID: transactionID,
		Amount:        status.Amount,
		Completed:     status.StatusDesc == "Completed",
	}, nil
}
