package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	actsvc "towergrow/pkg/activity/service"

	"towergrow/entities"
	"towergrow/pkg/lab/repository"
)

type LabCtrl struct {
	repo repository.LabRepository
	acts actsvc.ActivityService
}

func New(repo repository.LabRepository, acts actsvc.ActivityService) *LabCtrl {
	return &LabCtrl{repo: repo, acts: acts}
}

type logReq struct {
	Date  string   `json:"date"`
	PH    *float64 `json:"ph" validate:"required"`
	EC    *float64 `json:"ec" validate:"required"`
	TempC *float64 `json:"temp_c" validate:"required"`
}

func (h *LabCtrl) Log(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req logReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	d := time.Now()
	if req.Date != "" {
		if dd, err := time.Parse("2006-01-02", req.Date); err == nil {
			d = dd
		}
	}
	reading := &entities.LabReading{UserID: uid, Date: d, PH: *req.PH, EC: *req.EC, TempC: *req.TempC}
	if err := h.repo.Append(reading); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	// Logging a reading is itself a lab activity; this also triggers the
	// notification refresh.
	if _, err := h.acts.Log(uid, actsvc.KindLab); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, reading)
}

// List returns the full per-metric series, or the raw readings for the
// trailing window when ?days=N is given.
func (h *LabCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	if q := c.QueryParam("days"); q != "" {
		days, err := strconv.Atoi(q)
		if err != nil || days <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad days"})
		}
		readings, err := h.repo.Recent(uid, days)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, readings)
	}
	series, err := h.repo.Series(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, series)
}
