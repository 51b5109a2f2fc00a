package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"towergrow/pkg/tower/controller"
	"towergrow/pkg/tower/service"
)

type TowerCtrl struct{ svc service.TowerService }

func New(svc service.TowerService) controller.TowerController { return &TowerCtrl{svc} }

type plantReq struct {
	Crop string `json:"crop" validate:"required"`
}

func (h *TowerCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	slots, err := h.svc.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, slots)
}

func (h *TowerCtrl) Plant(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad slot index"})
	}
	var req plantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	slot, err := h.svc.Plant(uid, idx, req.Crop)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, slot)
}

func (h *TowerCtrl) Unplant(c echo.Context) error {
	uid := c.Get("uid").(string)
	idx, err := strconv.Atoi(c.Param("idx"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad slot index"})
	}
	slot, err := h.svc.Unplant(uid, idx)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, slot)
}
