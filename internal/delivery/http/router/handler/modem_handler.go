package handler

import (
	"context"
	"log/slog"
	"net/http"

	"simbridge/internal/delivery/http/response"
	"simbridge/internal/modemsession"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// modemReconnecter abstracts the session fleet for the handler.
type modemReconnecter interface {
	ReconnectPort(ctx context.Context, port string) error
}

// reconnectRequest names the port to reopen. Ports are device paths with
// slashes, so they travel in the body rather than the URL.
type reconnectRequest struct {
	Port string `json:"port"`
}

// ModemHandler serves the operator's modem maintenance actions.
type ModemHandler struct {
	manager modemReconnecter
	logger  *slog.Logger
}

// NewModemHandler is the constructor for ModemHandler, injected by Fx.
func NewModemHandler(manager *modemsession.Manager, logger *slog.Logger) *ModemHandler {
	return &ModemHandler{
		manager: manager,
		logger:  logger,
	}
}

// Reconnect tears down and reopens one modem session.
func (h *ModemHandler) Reconnect(c echo.Context) error {
	var req reconnectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reconnect input")
	}
	if req.Port == "" {
		return response.BadRequest(c, "INVALID_INPUT", "port is required")
	}

	if err := h.manager.ReconnectPort(c.Request().Context(), req.Port); err != nil {
		if errors.Is(err, modemsession.ErrUnknownPort) {
			return response.NotFound(c, "MODEM_NOT_FOUND", "no modem configured on that port")
		}

		return errors.WithStack(err)
	}

	h.logger.Info("modem reconnected", slog.String("port", req.Port))

	return response.Success(c, http.StatusOK, map[string]string{"port": req.Port}, "Modem reconnected")
}
