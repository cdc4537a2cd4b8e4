package controllerImp

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"studypal/pkg/analytics/serviceImp"
)

type AnalyticsCtrl struct{ svc *serviceImp.AnalyticsSvc }

func New(svc *serviceImp.AnalyticsSvc) *AnalyticsCtrl { return &AnalyticsCtrl{svc: svc} }

func (h *AnalyticsCtrl) Summary(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.svc.Summary(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AnalyticsCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	rows, err := h.svc.Summary(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"
	headers := []string{"Subject", "Tasks", "Completed", "Planned min", "Completed min", "Attempts", "Accuracy %"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for ri, row := range rows {
		values := []any{row.Subject, row.Tasks, row.Completed, row.PlannedMinutes, row.CompletedMinutes, row.Attempts, row.AccuracyPct}
		for ci, v := range values {
			cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "study-analytics.xlsx"))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
