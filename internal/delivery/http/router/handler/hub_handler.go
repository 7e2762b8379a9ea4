// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"simbridge/config"
	domainerrors "simbridge/internal/domain/errors"
	"simbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Agent protocol actions the Hub sends to this side.
const (
	actionGetServices      = "GET_SERVICES"
	actionGetNumber        = "GET_NUMBER"
	actionFinishActivation = "FINISH_ACTIVATION"
)

// hubRequest is the common envelope of every Hub request. Which fields
// are meaningful depends on the action.
type hubRequest struct {
	Action            string   `json:"action"`
	Key               string   `json:"key"`
	Country           string   `json:"country"`
	Operator          string   `json:"operator"`
	Service           string   `json:"service"`
	ExceptionPhoneSet []string `json:"exceptionPhoneSet"`
	ActivationID      int64    `json:"activationId"`
	Status            int      `json:"status"`
}

// hubError is the protocol-level failure shape.
type hubError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// HubHandler serves the Hub-facing agent protocol endpoint. Responses
// use the raw protocol shapes, never the dashboard envelope.
type HubHandler struct {
	uc     usecase.ActivationUsecase
	apiKey string
	logger *slog.Logger
}

// NewHubHandler is the constructor for HubHandler, injected by Fx.
func NewHubHandler(uc usecase.ActivationUsecase, cfg *config.Config, logger *slog.Logger) *HubHandler {
	return &HubHandler{
		uc:     uc,
		apiKey: cfg.Hub.APIKey,
		logger: logger,
	}
}

// Handle dispatches one Hub request by its action field.
func (h *HubHandler) Handle(c echo.Context) error {
	var req hubRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, hubError{Status: "ERROR", Error: "malformed request body"})
	}

	if req.Key != h.apiKey {
		h.logger.Warn("Hub request with invalid API key",
			slog.String("action", req.Action),
			slog.String("remote_ip", c.RealIP()),
		)

		return c.JSON(http.StatusUnauthorized, hubError{Status: "ERROR", Error: domainerrors.ErrUnauthorized.Message()})
	}

	switch req.Action {
	case actionGetServices:
		return h.getServices(c)
	case actionGetNumber:
		return h.getNumber(c, req)
	case actionFinishActivation:
		return h.finishActivation(c, req)
	default:
		return c.JSON(http.StatusBadRequest, hubError{Status: "ERROR", Error: "unknown action: " + req.Action})
	}
}

func (h *HubHandler) getServices(c echo.Context) error {
	// The request's optional country field is not applied here; the full
	// countryList goes back and the Hub narrows it on its side.
	countryList, err := h.uc.GetServices(c.Request().Context())
	if err != nil {
		return h.protocolError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":      "SUCCESS",
		"countryList": countryList,
	})
}

func (h *HubHandler) getNumber(c echo.Context, req hubRequest) error {
	assignment, err := h.uc.GetNumber(c.Request().Context(), usecase.NumberQuery{
		Service:           req.Service,
		Country:           req.Country,
		Operator:          req.Operator,
		ExceptionPrefixes: req.ExceptionPhoneSet,
	})
	if err != nil {
		// NO_NUMBERS is a successful protocol answer, not an HTTP failure.
		if errors.Is(err, domainerrors.ErrNoCapacity) {
			return c.JSON(http.StatusOK, map[string]any{"status": "NO_NUMBERS"})
		}

		return h.protocolError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":       "SUCCESS",
		"number":       assignment.Number,
		"activationId": assignment.ActivationID,
	})
}

func (h *HubHandler) finishActivation(c echo.Context, req hubRequest) error {
	if err := h.uc.FinishActivation(c.Request().Context(), req.ActivationID, req.Status); err != nil {
		return h.protocolError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "SUCCESS"})
}

// protocolError renders an error in the Hub protocol shape, keeping the
// taxonomy's HTTP code when the error carries one.
func (h *HubHandler) protocolError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		msg := appErr.Message()
		if details := appErr.Details(); details != "" {
			msg = msg + ": " + details
		}

		return c.JSON(appErr.HTTPCode(), hubError{Status: "ERROR", Error: msg})
	}

	h.logger.Error("Hub request failed", slog.String("error", err.Error()))

	return c.JSON(http.StatusInternalServerError, hubError{Status: "ERROR", Error: "internal error"})
}
