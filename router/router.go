package router

import (
	"github.com/labstack/echo/v4"

	"studypal/pkg/middleware"
	planctrl "studypal/pkg/plan/controller"
	taskctrl "studypal/pkg/tasks/controller"
)

func New(
	e *echo.Echo,
	planCtrl planctrl.PlanController,
	taskCtrl taskctrl.TaskController,
	practiceCtrl interface {
		Grade(echo.Context) error
		Attempts(echo.Context) error
	},
	doubtCtrl interface {
		Ask(echo.Context) error
		History(echo.Context) error
	},
	syllabusCtrl interface {
		List(echo.Context) error
		IngestURL(echo.Context) error
	},
	analyticsCtrl interface {
		Summary(echo.Context) error
		Export(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/plan/generate", planCtrl.Generate)
	api.GET("/plan", planCtrl.Get)
	api.PUT("/plan", planCtrl.Put)
	api.GET("/plan/today", planCtrl.Today)
	api.POST("/plan/today/tasks", planCtrl.AddToday)
	api.PATCH("/plan/tasks/:week/:day/:task", planCtrl.Toggle)

	api.GET("/tasks", taskCtrl.List)
	api.POST("/tasks", taskCtrl.Create)
	api.PATCH("/tasks/:id", taskCtrl.Patch)
	api.DELETE("/tasks/:id", taskCtrl.Delete)

	api.POST("/practice/grade", practiceCtrl.Grade)
	api.GET("/practice/attempts", practiceCtrl.Attempts)

	api.POST("/doubts", doubtCtrl.Ask)
	api.GET("/doubts", doubtCtrl.History)

	api.GET("/syllabus", syllabusCtrl.List)
	api.POST("/syllabus/ingest/url", syllabusCtrl.IngestURL)

	api.GET("/analytics", analyticsCtrl.Summary)
	api.GET("/analytics/export", analyticsCtrl.Export)

	return e
}
