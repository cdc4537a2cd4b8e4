package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Generate(c echo.Context) error
	Get(c echo.Context) error
	Put(c echo.Context) error
	Today(c echo.Context) error
	AddToday(c echo.Context) error
	Toggle(c echo.Context) error
}
