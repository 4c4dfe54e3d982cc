package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
	"github.com/sirupsen/logrus"
)

// CarrierClient creates pickup orders with the shipping carrier.
type CarrierClient struct {
	http   *resty.Client
	url    string
	apiKey string
}

func NewCarrierClient(cfg config.Collaborators) *CarrierClient {
	return &CarrierClient{
		http:   newHTTPClient(cfg.HTTPTimeout, cfg.HTTPRetryCount),
		url:    cfg.CarrierURL,
		apiKey: cfg.CarrierAPIKey,
	}
}

type carrierOrderResponse struct {
	Order struct {
		ID json.RawMessage `json:"id"`
	} `json:"order"`
}

// CreateOrder returns the carrier's order id as a string.
func (c *CarrierClient) CreateOrder(ctx context.Context, order models.CarrierOrder) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Api-Key", c.apiKey).
		SetHeader("X-User-Id", order.UserID).
		SetBody(models.CarrierOrderRequest{Order: order}).
		Post(c.url)
	if err != nil {
		metrics.CollaboratorCalls.WithLabelValues("carrier", metrics.Outcome(err)).Inc()
		return "", fmt.Errorf("%w: carrier request: %v", errorx.ErrCollaborator, err)
	}

	logrus.Infof("Carrier responded %d for grading %s", resp.StatusCode(), order.OrderDetails)
	if !resp.IsSuccess() {
		err = fmt.Errorf("%w: carrier returned %d: %s", errorx.ErrCollaborator, resp.StatusCode(), resp.String())
		metrics.CollaboratorCalls.WithLabelValues("carrier", metrics.Outcome(err)).Inc()
		return "", err
	}

	id, err := parseOrderID(resp.Body())
	metrics.CollaboratorCalls.WithLabelValues("carrier", metrics.Outcome(err)).Inc()
	return id, err
}

// parseOrderID accepts the id as either a JSON string or a number.
func parseOrderID(body []byte) (string, error) {
	var out carrierOrderResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: unreadable carrier response: %v", errorx.ErrCollaborator, err)
	}

	raw := strings.TrimSpace(string(out.Order.ID))
	if raw == "" || raw == "null" {
		return "", fmt.Errorf("%w: carrier response has no order.id", errorx.ErrCollaborator)
	}

	var s string
	if err := json.Unmarshal(out.Order.ID, &s); err == nil {
		if s == "" {
			return "", fmt.Errorf("%w: carrier response has empty order.id", errorx.ErrCollaborator)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(out.Order.ID, &n); err != nil {
		return "", fmt.Errorf("%w: unexpected order.id %s", errorx.ErrCollaborator, raw)
	}
	return n.String(), nil
}
