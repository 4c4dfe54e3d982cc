package client

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/setsunaxe7/pokemart-fulfillment/config"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/errorx"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/metrics"
	"github.com/setsunaxe7/pokemart-fulfillment/internal/models"
)

const photoField = "photo"

// VerificationClient forwards refund submissions to card verification.
type VerificationClient struct {
	http    *resty.Client
	baseURL string
}

func NewVerificationClient(cfg config.Collaborators) *VerificationClient {
	return &VerificationClient{
		http:    newHTTPClient(cfg.HTTPTimeout, 0),
		baseURL: strings.TrimRight(cfg.VerificationURL, "/"),
	}
}

// Forward posts the form as multipart and returns the collaborator's status code.
func (v *VerificationClient) Forward(ctx context.Context, form models.RefundProcessForm) (int, error) {
	req := v.http.R().
		SetContext(ctx).
		SetMultipartFormData(form.Fields)

	if form.PhotoContent != nil {
		mimeType := form.PhotoMimeType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		req.SetMultipartField(photoField, form.PhotoName, mimeType, bytes.NewReader(form.PhotoContent))
	}

	resp, err := req.Post(v.baseURL + "/verify")
	metrics.CollaboratorCalls.WithLabelValues("verification", metrics.Outcome(err)).Inc()
	if err != nil {
		return 0, fmt.Errorf("%w: verification request: %v", errorx.ErrCollaborator, err)
	}
	return resp.StatusCode(), nil
}
