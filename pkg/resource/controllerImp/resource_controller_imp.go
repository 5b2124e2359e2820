package controllerImp

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"elevare/pkg/resource"
)

type ResourceCtrl struct{}

func New() *ResourceCtrl { return &ResourceCtrl{} }

func (h *ResourceCtrl) Preview(c echo.Context) error {
	raw := c.QueryParam("url")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "url is required"})
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "url must be http(s)"})
	}
	p, err := resource.Fetch(c.Request().Context(), raw)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]any{"success": false, "message": "could not fetch resource"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": p})
}
