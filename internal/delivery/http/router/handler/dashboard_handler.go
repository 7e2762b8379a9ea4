package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"simbridge/internal/delivery/http/response"
	"simbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the operator-facing read-only endpoints.
type DashboardHandler struct {
	uc     usecase.ReportingUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.ReportingUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListModems reports every registered modem with its live state.
func (h *DashboardHandler) ListModems(c echo.Context) error {
	modems, err := h.uc.ListModems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, modems, "Modems retrieved successfully")
}

// ListActivations returns the most recent activations.
func (h *DashboardHandler) ListActivations(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
	}

	activations, err := h.uc.ListActivations(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activations, "Activations retrieved successfully")
}

// GetActivation returns one activation by its identifier.
func (h *DashboardHandler) GetActivation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "activation id must be an integer")
	}

	activation, err := h.uc.GetActivation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activation, "Activation retrieved successfully")
}

// ListSMS returns the most recently received messages.
func (h *DashboardHandler) ListSMS(c echo.Context) error {
	limit, err := parseLimit(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
	}

	records, err := h.uc.ListSMS(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "SMS records retrieved successfully")
}

// GetSMS returns one SMS record by its identifier.
func (h *DashboardHandler) GetSMS(c echo.Context) error {
	record, err := h.uc.GetSMS(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "SMS record retrieved successfully")
}

// Stats returns the aggregate bridge summary.
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func parseLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("invalid limit")
	}

	return limit, nil
}
