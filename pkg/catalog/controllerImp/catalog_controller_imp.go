package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"towergrow/pkg/catalog"
	"towergrow/pkg/catalog/controller"
)

type CatalogCtrl struct{ cat catalog.Catalog }

func New(cat catalog.Catalog) controller.CatalogController { return &CatalogCtrl{cat} }

func (h *CatalogCtrl) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cat.All())
}
