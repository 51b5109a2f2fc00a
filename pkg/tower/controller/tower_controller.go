package controller

import "github.com/labstack/echo/v4"

type TowerController interface {
	List(c echo.Context) error
	Plant(c echo.Context) error
	Unplant(c echo.Context) error
}
