package router

import (
	"github.com/labstack/echo/v4"

	"towergrow/pkg/middleware"
)

func New(
	e *echo.Echo,
	strictAuth bool,
	catalogCtrl interface{ Crops(echo.Context) error },
	towerCtrl interface {
		List(echo.Context) error
		Plant(echo.Context) error
		Unplant(echo.Context) error
	},
	scanCtrl interface{ Scan(echo.Context) error },
	labCtrl interface {
		Log(echo.Context) error
		List(echo.Context) error
	},
	activityCtrl interface {
		Log(echo.Context) error
		Stats(echo.Context) error
	},
	rewardsCtrl interface{ Rewards(echo.Context) error },
	notifCtrl interface {
		List(echo.Context) error
		MarkRead(echo.Context) error
		MarkAllRead(echo.Context) error
		Dismiss(echo.Context) error
		DismissAll(echo.Context) error
		Act(echo.Context) error
	},
	guideCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	if strictAuth {
		e.Use(middleware.RequireUser(true))
	} else {
		e.Use(middleware.DevLogin())
	}
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.GET("/crops", catalogCtrl.Crops)

	api.GET("/slots", towerCtrl.List)
	api.POST("/slots/:idx/plant", towerCtrl.Plant)
	api.POST("/slots/:idx/unplant", towerCtrl.Unplant)
	api.POST("/slots/:idx/scan", scanCtrl.Scan)

	api.POST("/lab", labCtrl.Log)
	api.GET("/lab", labCtrl.List)

	api.POST("/activities", activityCtrl.Log)
	api.GET("/stats", activityCtrl.Stats)
	api.GET("/rewards", rewardsCtrl.Rewards)

	g := e.Group("/notifications")
	g.GET("", notifCtrl.List)
	g.POST("/read-all", notifCtrl.MarkAllRead)
	g.POST("/dismiss-all", notifCtrl.DismissAll)
	g.POST("/:key/read", notifCtrl.MarkRead)
	g.POST("/:key/dismiss", notifCtrl.Dismiss)
	g.POST("/:key/act", notifCtrl.Act)

	api.POST("/guides/ingest", guideCtrl.IngestText)
	api.POST("/guides/ingest/url", guideCtrl.IngestURL)
	api.GET("/guides/search", guideCtrl.Search)
	api.GET("/guides", guideCtrl.List)
	return e
}
