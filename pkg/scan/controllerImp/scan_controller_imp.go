package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"towergrow/pkg/ai"
	"towergrow/pkg/scan/controller"
	"towergrow/pkg/scan/service"
)

type ScanCtrl struct{ svc service.ScanService }

func New(svc service.ScanService) controller.ScanController { return &ScanCtrl{svc} }

type scanReq struct {
	Image string `json:"image" validate:"required"`
}

func (h *ScanCtrl) Scan(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad slot index"})
	}
	var req scanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	out, err := h.svc.Scan(uid, idx, req.Image)
	if err != nil {
		if errors.Is(err, ai.ErrNotIdentified) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "plant could not be identified"})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"slot":         out.Slot,
		"diagnosis":    out.Diagnosis,
		"health_score": out.HealthScore,
		"ai":           out.Identification,
	})
}
