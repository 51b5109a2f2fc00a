package controller

import "github.com/labstack/echo/v4"

type ScanController interface {
	Scan(c echo.Context) error
}
