package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"studypal/pkg/plan/types"
	"studypal/pkg/practice/serviceImp"
)

type PracticeCtrl struct{ svc *serviceImp.PracticeSvc }

func New(svc *serviceImp.PracticeSvc) *PracticeCtrl { return &PracticeCtrl{svc: svc} }

func (h *PracticeCtrl) Grade(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Subject string              `json:"subject"`
		Chapter string              `json:"chapter"`
		Items   []types.GradingItem `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if len(body.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items required"})
	}
	verdicts, err := h.svc.Grade(uid, body.Subject, body.Chapter, body.Items)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"verdicts": verdicts})
}

func (h *PracticeCtrl) Attempts(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.Attempts(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
