package controller

import "github.com/labstack/echo/v4"

type RoadmapController interface {
	Generate(echo.Context) error       // POST, one-shot schema mode
	StreamGenerate(echo.Context) error // GET, legacy SSE mode
	ListByUser(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
	Export(echo.Context) error
}
