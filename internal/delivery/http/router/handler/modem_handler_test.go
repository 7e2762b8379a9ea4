package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbridge/internal/modemsession"
)

type fakeReconnecter struct {
	ports []string
	err   error
}

func (f *fakeReconnecter) ReconnectPort(_ context.Context, port string) error {
	f.ports = append(f.ports, port)

	return f.err
}

func newModemHandler(fake *fakeReconnecter) *ModemHandler {
	return &ModemHandler{
		manager: fake,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestModemHandler_Reconnect(t *testing.T) {
	fake := &fakeReconnecter{}
	h := newModemHandler(fake)

	ctx, rec := newHubTestContext(t, `{"port":"/dev/ttyUSB0"}`)
	require.NoError(t, h.Reconnect(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"/dev/ttyUSB0"}, fake.ports)

	payload := decodeBody(t, rec)
	assert.Equal(t, true, payload["success"])
}

func TestModemHandler_ReconnectUnknownPort(t *testing.T) {
	fake := &fakeReconnecter{err: errors.WithStack(modemsession.ErrUnknownPort)}
	h := newModemHandler(fake)

	ctx, rec := newHubTestContext(t, `{"port":"/dev/ttyUSB9"}`)
	require.NoError(t, h.Reconnect(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, false, payload["success"])
}

func TestModemHandler_ReconnectMissingPort(t *testing.T) {
	fake := &fakeReconnecter{}
	h := newModemHandler(fake)

	ctx, rec := newHubTestContext(t, `{}`)
	require.NoError(t, h.Reconnect(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.ports)
}
