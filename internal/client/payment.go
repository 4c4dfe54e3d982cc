package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
)

// PaymentClient talks to the payment collaborator. Refunds are never retried here.
type PaymentClient struct {
	http    *resty.Client
	baseURL string
}

func NewPaymentClient(cfg config.Collaborators) *PaymentClient {
	return &PaymentClient{
		http:    newHTTPClient(cfg.HTTPTimeout, 0),
		baseURL: strings.TrimRight(cfg.PaymentURL, "/"),
	}
}

type refundPayload struct {
	PaymentIntentID string `json:"payment_intent_id"`
}

// Refund returns the collaborator's status code. err is set only when no response arrived.
func (p *PaymentClient) Refund(ctx context.Context, paymentIntentID string) (int, error) {
	resp, err := p.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(refundPayload{PaymentIntentID: paymentIntentID}).
		Post(p.baseURL + "/refund")
	if err != nil {
		metrics.CollaboratorCalls.WithLabelValues("payment", "error").Inc()
		return 0, fmt.Errorf("%w: payment request: %v", errorx.ErrCollaborator, err)
	}

	outcome := "success"
	if resp.StatusCode() != 200 {
		outcome = "rejected"
	}
	metrics.CollaboratorCalls.WithLabelValues("payment", outcome).Inc()
	return resp.StatusCode(), nil
}
