package controller

import "github.com/labstack/echo/v4"

type AuthController interface {
	DevLogin(echo.Context) error
	WhoAmI(echo.Context) error
}
