package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"studypal/pkg/plan/service"
	"studypal/pkg/plan/types"
	"studypal/pkg/today"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

func (h *PlanCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req types.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(req.Subjects) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "subjects required"})
	}
	if req.StartDate == "" {
		req.StartDate = time.Now().Format("2006-01-02")
	}
	p, err := h.svc.Generate(uid, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlanCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := h.svc.Get(uid)
	if p == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no plan"})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Put(c echo.Context) error {
	uid := c.Get("uid").(string)
	var p types.StudyPlan
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Save(uid, &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Today(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := h.svc.Get(uid)
	res := today.Resolve(p, time.Now())
	if res == nil {
		return c.JSON(http.StatusOK, map[string]any{"entries": []types.Task{}, "weekIndex": -1, "dayIndex": -1})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PlanCtrl) AddToday(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Subject       string `json:"subject"`
		Chapter       string `json:"chapter"`
		TaskType      string `json:"taskType"`
		EstimatedTime int    `json:"estimatedTime"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if body.Subject == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "subject required"})
	}
	if body.TaskType == "" {
		body.TaskType = types.TypeLearning
	}
	p, err := h.svc.AddTaskToToday(uid, body.Subject, body.Chapter, body.TaskType, body.EstimatedTime, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlanCtrl) Toggle(c echo.Context) error {
	uid := c.Get("uid").(string)
	w, _ := strconv.Atoi(c.Param("week"))
	d, _ := strconv.Atoi(c.Param("day"))
	t, _ := strconv.Atoi(c.Param("task"))
	p, err := h.svc.ToggleTask(uid, w, d, t)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
