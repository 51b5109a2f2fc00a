package controller

import "github.com/labstack/echo/v4"

type RewardsController interface {
	Rewards(c echo.Context) error
}
