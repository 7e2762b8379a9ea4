// Package hub implements the agent side of the activation service protocol.
package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/domain/service"
	"simbridge/internal/errors"
)

const actionPushSMS = "PUSH_SMS"

// ErrPushRejected is returned when the Hub answered but did not
// acknowledge the message with status SUCCESS.
var ErrPushRejected = errors.New("hub rejected sms push")

type pushRequest struct {
	Action    string `json:"action"`
	Key       string `json:"key"`
	SMSID     string `json:"smsId"`
	Phone     string `json:"phone"`
	PhoneFrom string `json:"phoneFrom"`
	Text      string `json:"text"`
}

type pushResponse struct {
	Status string `json:"status"`
}

type client struct {
	httpClient *http.Client
	pushURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient creates a Hub client bound to the configured push endpoint.
func NewClient(cfg *config.Config, logger *slog.Logger) service.HubClient {
	return &client{
		httpClient: &http.Client{Timeout: cfg.Hub.RequestTimeout},
		pushURL:    cfg.Hub.PushURL,
		apiKey:     cfg.Hub.APIKey,
		logger:     logger,
	}
}

// PushSMS performs exactly one PUSH_SMS request. The Hub treats smsId as
// the dedupe key, so replays of the same record are safe.
func (c *client) PushSMS(ctx context.Context, record *entity.SMSRecord) error {
	payload, err := json.Marshal(pushRequest{
		Action:    actionPushSMS,
		Key:       c.apiKey,
		SMSID:     record.ID,
		Phone:     record.PhoneTo,
		PhoneFrom: record.PhoneFrom,
		Text:      record.Text,
	})
	if err != nil {
		return errors.Wrap(err, "marshal push request")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.pushURL, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build push request")
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Wrap(err, "push sms to hub")
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, 1<<16))
	if err != nil {
		return errors.Wrap(err, "read hub response")
	}

	if response.StatusCode != http.StatusOK {
		return errors.Wrapf(ErrPushRejected, "http %d", response.StatusCode)
	}

	var parsed pushResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return errors.Wrapf(err, "decode hub response %q", string(body))
	}

	if parsed.Status != "SUCCESS" {
		return errors.Wrapf(ErrPushRejected, "status %q", parsed.Status)
	}

	c.logger.Debug("sms pushed to hub", slog.String("smsId", record.ID))

	return nil
}
