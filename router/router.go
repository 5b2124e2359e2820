package router

import (
	"github.com/labstack/echo/v4"

	"elevare/pkg/middleware"
)

func New(
	e *echo.Echo,
	careerCtrl interface{ Predict(echo.Context) error },
	roadmapCtrl interface {
		Generate(echo.Context) error
		StreamGenerate(echo.Context) error
		ListByUser(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
	},
	resourceCtrl interface{ Preview(echo.Context) error },
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("/api")

	e.GET("/whoami", authCtrl.WhoAmI)
	e.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/career/predict", careerCtrl.Predict)

	r := api.Group("/roadmap")
	r.POST("/generate", roadmapCtrl.Generate)
	// legacy streaming variant of the same operation
	r.GET("/generate", roadmapCtrl.StreamGenerate)
	r.GET("/user", roadmapCtrl.ListByUser)
	r.GET("/:id", roadmapCtrl.Get)
	r.DELETE("/:id", roadmapCtrl.Delete)
	r.GET("/:id/export", roadmapCtrl.Export)

	api.GET("/resource/preview", resourceCtrl.Preview)

	return e
}
