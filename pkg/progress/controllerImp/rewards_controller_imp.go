package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	actsvc "towergrow/pkg/activity/service"
	"towergrow/pkg/progress"
	"towergrow/pkg/progress/controller"
	"towergrow/pkg/tower/repository"
)

type RewardsCtrl struct {
	slots repository.SlotRepository
	acts  actsvc.ActivityService
}

func New(slots repository.SlotRepository, acts actsvc.ActivityService) controller.RewardsController {
	return &RewardsCtrl{slots: slots, acts: acts}
}

func (h *RewardsCtrl) Rewards(c echo.Context) error {
	uid := c.Get("uid").(string)
	slots, err := h.slots.ByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	stats, err := h.acts.Stats(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	xp := progress.XP(slots, stats)
	return c.JSON(http.StatusOK, map[string]any{
		"xp":           xp,
		"level":        progress.LevelFor(xp),
		"progress":     progress.LevelProgress(xp),
		"achievements": progress.Achievements(slots, stats),
		"records":      progress.PersonalRecords(slots, stats),
		"stats":        stats,
	})
}
