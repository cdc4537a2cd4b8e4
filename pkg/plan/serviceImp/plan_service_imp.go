package serviceImp

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"studypal/pkg/ai"
	planrepo "studypal/pkg/plan/repository"
	"studypal/pkg/plan/types"
	"studypal/pkg/subject"
	"studypal/pkg/today"
)

type PlanSvc struct {
	llm      ai.Client
	fallback ai.Client
	repo     planrepo.PlanRepository
}

func NewPlanService(llm ai.Client, repo planrepo.PlanRepository) *PlanSvc {
	return &PlanSvc{llm: llm, fallback: ai.NewMock(), repo: repo}
}

// Generate builds a fresh plan and replaces whatever was stored. A failing
// model call degrades to the mock generator — offline use keeps working.
func (s *PlanSvc) Generate(uid string, req types.PlanRequest) (*types.StudyPlan, error) {
	p, err := s.llm.GeneratePlan(req)
	if err != nil {
		log.Printf("[plan] generate via model failed for %s: %v (using mock)", uid, err)
		p, err = s.fallback.GeneratePlan(req)
		if err != nil {
			return nil, err
		}
	}
	if err := s.Save(uid, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlanSvc) Get(uid string) *types.StudyPlan {
	return s.repo.Load(uid)
}

// Save enforces the plan invariants before anything hits the store:
// week numbers equal their position, every task subject is canonical, and
// every task has a stable id.
func (s *PlanSvc) Save(uid string, p *types.StudyPlan) error {
	for wi := range p.Weeks {
		w := &p.Weeks[wi]
		w.WeekNumber = wi
		for di := range w.Days {
			for ei := range w.Days[di].Entries {
				t := w.Days[di].Entries[ei].Task
				if t == nil {
					continue
				}
				t.Subject = subject.Normalize(t.Subject)
				if t.ID == "" {
					t.ID = uuid.NewString()
				}
			}
		}
	}
	return s.repo.Save(uid, p)
}

// ToggleTask flips the addressed task between completed and pending. An
// out-of-range coordinate or a break target is a caller bug, not a runtime
// condition: logged and ignored.
func (s *PlanSvc) ToggleTask(uid string, week, day, task int) (*types.StudyPlan, error) {
	p := s.repo.Load(uid)
	if p == nil {
		return nil, fmt.Errorf("no plan stored")
	}
	if week < 0 || week >= len(p.Weeks) || day < 0 || day >= len(p.Weeks[week].Days) {
		log.Printf("[plan] toggle out of range for %s: %d/%d/%d", uid, week, day, task)
		return p, nil
	}
	entries := p.Weeks[week].Days[day].Entries
	if task < 0 || task >= len(entries) || entries[task].Task == nil {
		log.Printf("[plan] toggle target is not a task for %s: %d/%d/%d", uid, week, day, task)
		return p, nil
	}
	t := entries[task].Task
	if t.Status == types.StatusCompleted {
		t.Status = types.StatusPending
	} else {
		t.Status = types.StatusCompleted
	}
	if err := s.Save(uid, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddTaskToToday inserts a task into the day matching now. Only exact (or
// embedded-timestamp) matches count here — no nearest-future fallback; when
// nothing matches, a new day is prepended to the first week so the task still
// shows up immediately.
func (s *PlanSvc) AddTaskToToday(uid, subjectName, chapter, taskType string, minutes int, now time.Time) (*types.StudyPlan, error) {
	p := s.repo.Load(uid)
	if p == nil {
		p = &types.StudyPlan{}
	}
	ymd := now.Format("2006-01-02")
	entry := types.TaskEntry(types.Task{
		Subject:              subjectName, // canonicalized on save
		Chapter:              chapter,
		TaskType:             taskType,
		EstimatedTimeMinutes: minutes,
		Status:               types.StatusPending,
	})

	placed := false
	for wi := range p.Weeks {
		for di := range p.Weeks[wi].Days {
			if today.MatchExact(p.Weeks[wi].Days[di].Date, ymd) {
				p.Weeks[wi].Days[di].Entries = append(p.Weeks[wi].Days[di].Entries, entry)
				placed = true
				break
			}
		}
		if placed {
			break
		}
	}
	if !placed {
		newDay := types.Day{Date: ymd, Entries: []types.Entry{entry}}
		if len(p.Weeks) == 0 {
			p.Weeks = append(p.Weeks, types.Week{})
		}
		p.Weeks[0].Days = append([]types.Day{newDay}, p.Weeks[0].Days...)
	}
	if err := s.Save(uid, p); err != nil {
		return nil, err
	}
	return p, nil
}
