package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"studypal/pkg/ai"
	"studypal/pkg/doubt/serviceImp"
)

type DoubtCtrl struct{ svc *serviceImp.DoubtSvc }

func New(svc *serviceImp.DoubtSvc) *DoubtCtrl { return &DoubtCtrl{svc: svc} }

func (h *DoubtCtrl) Ask(c echo.Context) error {
	uid := c.Get("uid").(string)
	var body struct {
		Question string       `json:"question"`
		Context  []ai.Message `json:"context"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if strings.TrimSpace(body.Question) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "question required"})
	}
	answer, err := h.svc.Solve(uid, body.Question, body.Context)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}

func (h *DoubtCtrl) History(c echo.Context) error {
	uid := c.Get("uid").(string)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.svc.History(uid, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
