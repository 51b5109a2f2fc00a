package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"towergrow/pkg/notification/controller"
	"towergrow/pkg/notification/service"
)

type notifCtrl struct{ svc service.NotificationService }

func New(svc service.NotificationService) controller.NotificationController {
	return &notifCtrl{svc}
}

func (h *notifCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	items, unreadCount, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"notifications": items,
		"unread":        unreadCount,
	})
}

func (h *notifCtrl) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "source key required"})
	}
	if err := h.svc.MarkRead(uid, key); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *notifCtrl) MarkAllRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.MarkAllRead(uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *notifCtrl) Dismiss(c echo.Context) error {
	uid := c.Get("uid").(string)
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "source key required"})
	}
	if err := h.svc.Dismiss(uid, key); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *notifCtrl) DismissAll(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.svc.DismissAll(uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *notifCtrl) Act(c echo.Context) error {
	uid := c.Get("uid").(string)
	key := c.Param("key")
	action, err := h.svc.ExecuteAction(uid, key)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"action": action})
}
