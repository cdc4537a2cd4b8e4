package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"studypal/entities"
	"studypal/pkg/tasks/repository"
)

type TaskCtrl struct{ repo repository.TaskRepository }

func New(repo repository.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

type createReq struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title required"})
	}
	t := &entities.CustomTask{
		ID:              uuid.NewString(),
		UserID:          uid,
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       time.Now(),
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.repo.SetCompleted(c.Param("id"), uid, body.Completed); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.repo.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
