package controller

import "github.com/labstack/echo/v4"

type CareerController interface {
	Predict(echo.Context) error
}
