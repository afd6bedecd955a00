package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"connkeeper/internal/delivery/http/response"
	"connkeeper/internal/domain/repository"
	"connkeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications handles retrieving the user's notification feed
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	events, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to list notifications",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "LIST_FAILED", "Failed to list notifications")
	}

	return response.Success(c, http.StatusOK, events, "Notifications retrieved successfully")
}

// UnreadCount handles retrieving the user's unread notification count
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		h.logger.Error("Failed to count unread notifications",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "COUNT_FAILED", "Failed to count unread notifications")
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "Unread count retrieved successfully")
}

// MarkAsRead handles flagging one notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkAsRead(c.Request().Context(), userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return response.NotFound(c, "NOTIFICATION_NOT_FOUND", "Notification not found")
		}

		h.logger.Error("Failed to mark notification read",
			slog.String("user_id", userID.String()),
			slog.String("notification_id", notificationID.String()),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, "MARK_READ_FAILED", "Failed to mark notification read")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked read"}, "Notification marked read")
}
