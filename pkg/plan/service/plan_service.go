package service

import (
	"time"

	"studypal/pkg/plan/types"
)

type PlanService interface {
	Generate(uid string, req types.PlanRequest) (*types.StudyPlan, error)
	Get(uid string) *types.StudyPlan
	Save(uid string, p *types.StudyPlan) error
	ToggleTask(uid string, week, day, task int) (*types.StudyPlan, error)
	AddTaskToToday(uid, subjectName, chapter, taskType string, minutes int, now time.Time) (*types.StudyPlan, error)
}
