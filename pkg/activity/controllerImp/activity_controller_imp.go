package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"towergrow/pkg/activity/service"
)

type ActivityCtrl struct{ svc service.ActivityService }

func New(svc service.ActivityService) *ActivityCtrl { return &ActivityCtrl{svc} }

type logReq struct {
	Type string `json:"type" validate:"required,oneof=water nutrient"`
}

// Log records a water or nutrient activity. Lab readings go through the lab
// endpoint, which counts as a lab activity on its own.
func (h *ActivityCtrl) Log(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req logReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	st, err := h.svc.Log(uid, service.Kind(req.Type))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}

func (h *ActivityCtrl) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)
	st, err := h.svc.Stats(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, st)
}
