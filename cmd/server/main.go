package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"studypal/config"
	"studypal/database"
	"studypal/router"

	// Auth + Health
	authCtrlImp "studypal/pkg/auth/controllerImp"
	healthCtrlImp "studypal/pkg/health/controllerImp"

	// Plan
	planCtrlImp "studypal/pkg/plan/controllerImp"
	planRepoImp "studypal/pkg/plan/repositoryImp"
	planSvc "studypal/pkg/plan/serviceImp"

	// Custom tasks
	taskCtrlImp "studypal/pkg/tasks/controllerImp"
	taskRepoImp "studypal/pkg/tasks/repositoryImp"

	// Practice
	pracCtrlImp "studypal/pkg/practice/controllerImp"
	pracRepoImp "studypal/pkg/practice/repositoryImp"
	pracSvc "studypal/pkg/practice/serviceImp"

	// Doubts
	doubtCtrlImp "studypal/pkg/doubt/controllerImp"
	doubtRepoImp "studypal/pkg/doubt/repositoryImp"
	doubtSvc "studypal/pkg/doubt/serviceImp"

	// Syllabus
	syllCtrlImp "studypal/pkg/syllabus/controllerImp"
	syllRepoImp "studypal/pkg/syllabus/repositoryImp"

	// Analytics
	analyticsCtrlImp "studypal/pkg/analytics/controllerImp"
	analyticsSvc "studypal/pkg/analytics/serviceImp"

	"studypal/pkg/ai"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) AI client (mock when unconfigured; every consumer also falls back
	// to mock output on call failure)
	var llm ai.Client
	if cfg.AIEndpoint != "" && cfg.AIAPIKey != "" {
		llm = ai.NewOpenAI(cfg.AIEndpoint, cfg.AIAPIKey, cfg.AIModel)
	} else {
		llm = ai.NewMock()
	}

	// 5) Repos/Services/Controllers
	pRepo := planRepoImp.New(db)
	pSvc := planSvc.NewPlanService(llm, pRepo)
	plCtrl := planCtrlImp.NewPlanCtrl(pSvc)

	tRepo := taskRepoImp.New(db)
	tCtrl := taskCtrlImp.New(tRepo)

	prRepo := pracRepoImp.New(db)
	prSvc := pracSvc.New(llm, prRepo)
	prCtrl := pracCtrlImp.New(prSvc)

	dRepo := doubtRepoImp.New(db)
	dSvc := doubtSvc.New(llm, dRepo)
	dCtrl := doubtCtrlImp.New(dSvc)

	syRepo := syllRepoImp.New(db)
	syCtrl := syllCtrlImp.New(syRepo)

	anSvc := analyticsSvc.New(pSvc, prRepo)
	anCtrl := analyticsCtrlImp.New(anSvc)

	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Router
	r := router.New(
		e,
		plCtrl,
		tCtrl,
		prCtrl,
		dCtrl,
		syCtrl,
		anCtrl,
		authCtrl,
		hCtrl,
	)

	// 7) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
