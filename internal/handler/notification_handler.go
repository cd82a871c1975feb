package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/service"
)

// NotificationHandler handles in-app notification endpoints. The header
// widget polls Check; GET and POST are both accepted there.
type NotificationHandler struct {
	notificationService service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// CheckResponse represents the notification scan result.
type CheckResponse struct {
	Success bool                       `json:"success"`
	Counts  service.NotificationCounts `json:"counts"`
}

// Check godoc
// @Summary Scan for due follow-ups, expiring memberships and overdue payments
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Success 200 {object} CheckResponse
// @Router /notifications/check [get]
func (h *NotificationHandler) Check(c echo.Context) error {
	counts, err := h.notificationService.Check(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, CheckResponse{Success: true, Counts: counts})
}

// List godoc
// @Summary List open notifications
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Param limit query int false "Max results"
// @Success 200 {array} model.Notification
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	notifications, err := h.notificationService.List(c.Request().Context(), limit)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.MarkRead(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification read"})
}

// MarkAllRead godoc
// @Summary Mark every open notification read
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationService.MarkAllRead(c.Request().Context()); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "all notifications read"})
}

// Dismiss godoc
// @Summary Dismiss a notification
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id}/dismiss [post]
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.notificationService.Dismiss(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "notification dismissed"})
}
