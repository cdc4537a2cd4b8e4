package serviceImp

import (
	"sort"

	"studypal/entities"
	"studypal/pkg/plan/types"
)

type planGetter interface {
	Get(uid string) *types.StudyPlan
}

type attemptLister interface {
	ListByUser(uid string, limit int) ([]entities.PracticeAttempt, error)
}

// SubjectSummary aggregates plan progress and practice accuracy for one
// subject.
type SubjectSummary struct {
	Subject          string  `json:"subject"`
	Tasks            int     `json:"tasks"`
	Completed        int     `json:"completed"`
	PlannedMinutes   int     `json:"planned_minutes"`
	CompletedMinutes int     `json:"completed_minutes"`
	Attempts         int     `json:"attempts"`
	AccuracyPct      float64 `json:"accuracy_pct"`
}

type AnalyticsSvc struct {
	plans    planGetter
	attempts attemptLister
}

func New(plans planGetter, attempts attemptLister) *AnalyticsSvc {
	return &AnalyticsSvc{plans: plans, attempts: attempts}
}

// Summary walks the stored plan and attempt history and returns one row per
// subject, sorted by subject name. Subjects in the plan are already
// canonical, so attempt rows join on the bare string.
func (s *AnalyticsSvc) Summary(uid string) ([]SubjectSummary, error) {
	bySubject := map[string]*SubjectSummary{}
	get := func(name string) *SubjectSummary {
		if row, ok := bySubject[name]; ok {
			return row
		}
		row := &SubjectSummary{Subject: name}
		bySubject[name] = row
		return row
	}

	if plan := s.plans.Get(uid); plan != nil {
		for _, w := range plan.Weeks {
			for _, d := range w.Days {
				for _, e := range d.Entries {
					if e.Task == nil {
						continue
					}
					row := get(e.Task.Subject)
					row.Tasks++
					row.PlannedMinutes += e.Task.EstimatedTimeMinutes
					if e.Task.Status == types.StatusCompleted {
						row.Completed++
						row.CompletedMinutes += e.Task.EstimatedTimeMinutes
					}
				}
			}
		}
	}

	attempts, err := s.attempts.ListByUser(uid, 0)
	if err != nil {
		return nil, err
	}
	marks := map[string][2]float64{} // awarded, total
	for _, a := range attempts {
		row := get(a.Subject)
		row.Attempts++
		m := marks[a.Subject]
		m[0] += a.MarksAwarded
		m[1] += a.MarksTotal
		marks[a.Subject] = m
	}
	for name, m := range marks {
		if m[1] > 0 {
			bySubject[name].AccuracyPct = 100 * m[0] / m[1]
		}
	}

	out := make([]SubjectSummary, 0, len(bySubject))
	for _, row := range bySubject {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Subject < out[j].Subject })
	return out, nil
}
