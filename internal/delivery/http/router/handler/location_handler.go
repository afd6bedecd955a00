// Package handler contains the echo handlers of the HTTP API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"connkeeper/internal/delivery/http/response"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderXUserID carries the authenticated account ID, resolved by the edge
// proxy in front of this service.
const HeaderXUserID = "X-User-Id"

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SubmitSampleRequest represents the request body for a raw location sample
type SubmitSampleRequest struct {
	Latitude   float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64   `json:"longitude" validate:"min=-180,max=180"`
	Accuracy   *float64  `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Heading    *float64  `json:"heading,omitempty" validate:"omitempty,min=0,max=360"`
	Speed      *float64  `json:"speed,omitempty" validate:"omitempty,min=0"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SubmitSample handles one raw location sample from a device. An accepted
// request means the sample entered the pipeline, not that it survived the
// sharing gate or the sampling throttle.
func (h *LocationHandler) SubmitSample(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubmitSampleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sample input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if req.RecordedAt.IsZero() {
		req.RecordedAt = time.Now()
	}

	sample := &usecase.LocationSample{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Accuracy:   req.Accuracy,
		Heading:    req.Heading,
		Speed:      req.Speed,
		RecordedAt: req.RecordedAt,
	}

	if err := h.locationUC.AcceptSample(c.Request().Context(), userID, sample); err != nil {
		h.logger.Error("Failed to accept sample",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "SAMPLE_FAILED", "Failed to accept sample")
	}

	return response.Success(c, http.StatusAccepted, nil, "Sample accepted")
}

// GetMemberLocations handles retrieving the tracked members with their last
// known locations.
func (h *LocationHandler) GetMemberLocations(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	members, err := h.locationUC.GetMemberLocations(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list member locations",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "MEMBERS_FAILED", "Failed to list member locations")
	}

	return response.Success(c, http.StatusOK, members, "Member locations retrieved successfully")
}

// getUserID extracts the account ID from the request headers.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Request().Header.Get(HeaderXUserID))
	if err != nil {
		return uuid.Nil, response.Unauthorized(c, "INVALID_USER", "Missing or invalid user ID header")
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
