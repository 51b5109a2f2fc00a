package controller

import "github.com/labstack/echo/v4"

type NotificationController interface {
	List(c echo.Context) error
	MarkRead(c echo.Context) error
	MarkAllRead(c echo.Context) error
	Dismiss(c echo.Context) error
	DismissAll(c echo.Context) error
	Act(c echo.Context) error
}
