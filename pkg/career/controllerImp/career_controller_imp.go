package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elevare/entities"
	"elevare/pkg/career/controller"
	"elevare/pkg/career/predictor"
)

type CareerCtrl struct{ ml predictor.Client }

func New(ml predictor.Client) controller.CareerController { return &CareerCtrl{ml: ml} }

func (h *CareerCtrl) Predict(c echo.Context) error {
	var req entities.CareerProfile
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "bad json"})
	}
	career, err := h.ml.Predict(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"success": false, "message": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "predicted_career": career})
}
