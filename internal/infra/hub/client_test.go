package hub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbridge/config"
	"simbridge/internal/domain/entity"
)

func newTestClient(t *testing.T, serverURL string) *client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Hub.PushURL = serverURL
	cfg.Hub.APIKey = "secret-key"
	cfg.Hub.RequestTimeout = 2 * time.Second

	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*client)
}

func testRecord() *entity.SMSRecord {
	return &entity.SMSRecord{
		ID:        "0f4b7a34-9d1e-4a6d-8f43-1b6c8f1c2a11",
		PhoneTo:   "+79161234567",
		PhoneFrom: "ServiceName",
		Text:      "Your code is 4821",
	}
}

func TestPushSMSSuccess(t *testing.T) {
	var got pushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]string{"status": "SUCCESS"})
	}))
	defer server.Close()

	hubClient := newTestClient(t, server.URL)
	require.NoError(t, hubClient.PushSMS(context.Background(), testRecord()))

	assert.Equal(t, "PUSH_SMS", got.Action)
	assert.Equal(t, "secret-key", got.Key)
	assert.Equal(t, "0f4b7a34-9d1e-4a6d-8f43-1b6c8f1c2a11", got.SMSID)
	assert.Equal(t, "+79161234567", got.Phone)
	assert.Equal(t, "ServiceName", got.PhoneFrom)
	assert.Equal(t, "Your code is 4821", got.Text)
}

func TestPushSMSRejectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ERROR"})
	}))
	defer server.Close()

	hubClient := newTestClient(t, server.URL)
	err := hubClient.PushSMS(context.Background(), testRecord())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPushRejected)
}

func TestPushSMSHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	hubClient := newTestClient(t, server.URL)
	err := hubClient.PushSMS(context.Background(), testRecord())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPushRejected)
}

func TestPushSMSGarbledResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	hubClient := newTestClient(t, server.URL)
	require.Error(t, hubClient.PushSMS(context.Background(), testRecord()))
}

func TestPushSMSConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	hubClient := newTestClient(t, server.URL)
	require.Error(t, hubClient.PushSMS(context.Background(), testRecord()))
}
