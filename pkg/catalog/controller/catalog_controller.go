package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	Crops(c echo.Context) error
}
