package ai

import (
	"fmt"
	"strings"
	"time"

	"studypal/pkg/plan/types"
)

// mockClient produces deterministic offline output. It is the configured
// client when no AI endpoint is set, and every AI consumer also falls back to
// it when the remote call fails — the app must keep working without network.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) GeneratePlan(req types.PlanRequest) (*types.StudyPlan, error) {
	subjects := req.Subjects
	if len(subjects) == 0 {
		subjects = []string{"Mathematics", "Physics"}
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		start = time.Now()
	}
	days := req.DaysUntilTarget
	if days <= 0 {
		days = 14
	}
	minutes := req.DailyMinutes
	if minutes <= 0 {
		minutes = 120
	}
	taskTypes := []string{types.TypeLearning, types.TypeRevision, types.TypePractice}

	plan := &types.StudyPlan{TargetDate: req.TargetDate}
	var week types.Week
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		first := subjects[i%len(subjects)]
		second := subjects[(i+1)%len(subjects)]
		day := types.Day{
			Date: date.Format("2006-01-02"),
			Entries: []types.Entry{
				types.TaskEntry(types.Task{
					Subject:              first,
					Chapter:              chapterFor(req, first, i),
					TaskType:             taskTypes[i%len(taskTypes)],
					EstimatedTimeMinutes: minutes / 2,
					Status:               types.StatusPending,
				}),
				types.BreakEntry(types.Break{DurationMinutes: 20}),
				types.TaskEntry(types.Task{
					Subject:              second,
					Chapter:              chapterFor(req, second, i+1),
					TaskType:             taskTypes[(i+1)%len(taskTypes)],
					EstimatedTimeMinutes: minutes - minutes/2,
					Status:               types.StatusPending,
				}),
			},
		}
		week.Days = append(week.Days, day)
		if len(week.Days) == 7 {
			plan.Weeks = append(plan.Weeks, week)
			week = types.Week{}
		}
	}
	if len(week.Days) > 0 {
		plan.Weeks = append(plan.Weeks, week)
	}
	return plan, nil
}

func chapterFor(req types.PlanRequest, subject string, i int) string {
	if len(req.Chapters) > 0 {
		return req.Chapters[i%len(req.Chapters)]
	}
	return fmt.Sprintf("%s basics %d", subject, i/2+1)
}

func (m *mockClient) GradeAnswers(items []types.GradingItem) ([]types.Verdict, error) {
	out := make([]types.Verdict, 0, len(items))
	for _, it := range items {
		ans := strings.TrimSpace(it.Answer)
		v := types.Verdict{MaxMarks: 1}
		switch {
		case ans == "":
			v.Mistake = "no answer given"
			v.CorrectAnswer = "see your notes for this topic"
		case overlaps(it.Question, ans):
			v.Correct = true
			v.Marks = 1
		default:
			v.Marks = 0.5
			v.Mistake = "answer does not address the question directly"
			v.CorrectAnswer = "see your notes for this topic"
		}
		out = append(out, v)
	}
	return out, nil
}

// overlaps is a crude relevance check: the answer reuses at least one
// significant word from the question.
func overlaps(question, answer string) bool {
	low := strings.ToLower(answer)
	for _, w := range strings.Fields(strings.ToLower(question)) {
		if len(w) >= 5 && strings.Contains(low, w) {
			return true
		}
	}
	return false
}

func (m *mockClient) SolveDoubt(question string, context []Message) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "Ask me a question about any topic in your plan and I'll walk you through it.", nil
	}
	return fmt.Sprintf(
		"Here is a way to think about %q: break it into the smallest definition you know, work one example by hand, then try a variation. (offline answer)",
		q,
	), nil
}
