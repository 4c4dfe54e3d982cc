package client

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
)

type NotifierClient struct {
	http *resty.Client
	url  string
}

func NewNotifierClient(cfg config.Collaborators) *NotifierClient {
	return &NotifierClient{
		http: newHTTPClient(cfg.HTTPTimeout, cfg.HTTPRetryCount),
		url:  cfg.NotificationURL,
	}
}

func (n *NotifierClient) Send(ctx context.Context, envelope models.NotificationEnvelope) error {
	resp, err := n.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope).
		Post(n.url)
	if err != nil {
		metrics.CollaboratorCalls.WithLabelValues("notifier", "error").Inc()
		return fmt.Errorf("%w: notifier request: %v", errorx.ErrCollaborator, err)
	}
	if !resp.IsSuccess() {
		metrics.CollaboratorCalls.WithLabelValues("notifier", "error").Inc()
		return fmt.Errorf("%w: notifier returned %d", errorx.ErrCollaborator, resp.StatusCode())
	}
	metrics.CollaboratorCalls.WithLabelValues("notifier", "success").Inc()
	return nil
}
