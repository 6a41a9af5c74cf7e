package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wakacab/wakacab/internal/pkg/logger"
	"github.com/wakacab/wakacab/internal/pkg/models"
	"github.com/wakacab/wakacab/internal/pkg/nsq"
	"github.com/wakacab/wakacab/services/payment"
)

type paymentGW struct {
	cfg      *models.Config
	client   *http.Client
	producer *nsq.Producer
	log      *logger.AppLogger
}

// NewPaymentGW creates the provider gateway. A nil producer disables
// settlement events.
func NewPaymentGW(cfg *models.Config, producer *nsq.Producer, log *logger.AppLogger) payment.PaymentGW {
	timeout := cfg.Provider.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &paymentGW{
		cfg:      cfg,
		client:   &http.Client{Timeout: timeout},
		producer: producer,
		log:      log,
	}
}

func (g *paymentGW) InitiatePayment(ctx context.Context, request models.ProviderInitiateRequest) (*models.ProviderInitiateResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal provider request: %w", err)
	}

	url := g.cfg.Provider.BaseURL + "/v1/payments"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", g.cfg.Provider.APIKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: provider returned status %d", payment.ErrProviderUnavailable, resp.StatusCode)
	}

	var initResp models.ProviderInitiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&initResp); err != nil {
		return nil, fmt.Errorf("%w: invalid provider response: %v", payment.ErrProviderUnavailable, err)
	}
	if initResp.ExternalRef == "" {
		return nil, fmt.Errorf("%w: provider response missing reference", payment.ErrProviderUnavailable)
	}
	return &initResp, nil
}

func (g *paymentGW) PublishPaymentSettled(_ context.Context, event models.PaymentSettledEvent) {
	if g.producer == nil || !g.cfg.NSQ.PublishEnabled {
		return
	}
	if err := g.producer.Publish(models.TopicPaymentSettled, event); err != nil {
		g.log.WithFields(logrus.Fields{
			"transaction_id": event.TransactionID,
			"error":          err.Error(),
		}).Warn("Failed to publish settlement event")
	}
}
