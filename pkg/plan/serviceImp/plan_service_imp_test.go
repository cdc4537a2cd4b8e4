package serviceImp

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studypal/pkg/ai"
	"studypal/pkg/plan/types"
	"studypal/pkg/today"
)

// fakeRepo stores plans in memory, round-tripping through JSON so the codec
// is exercised the same way the sqlite-backed repo exercises it.
type fakeRepo struct {
	blobs map[string]string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{blobs: map[string]string{}} }

func (r *fakeRepo) Load(uid string) *types.StudyPlan {
	raw, ok := r.blobs[uid]
	if !ok {
		return nil
	}
	var p types.StudyPlan
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil
	}
	return &p
}

func (r *fakeRepo) Save(uid string, p *types.StudyPlan) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.blobs[uid] = string(b)
	return nil
}

// failingClient simulates an unreachable model endpoint.
type failingClient struct{}

func (failingClient) GeneratePlan(types.PlanRequest) (*types.StudyPlan, error) {
	return nil, fmt.Errorf("connect: network unreachable")
}
func (failingClient) GradeAnswers([]types.GradingItem) ([]types.Verdict, error) {
	return nil, fmt.Errorf("connect: network unreachable")
}
func (failingClient) SolveDoubt(string, []ai.Message) (string, error) {
	return "", fmt.Errorf("connect: network unreachable")
}

func scrambledPlan() *types.StudyPlan {
	return &types.StudyPlan{
		TargetDate: "2025-06-01",
		Weeks: []types.Week{
			{WeekNumber: 9, Days: []types.Day{{
				Date: "2025-04-13",
				Entries: []types.Entry{
					types.TaskEntry(types.Task{Subject: "Physics", Chapter: "Waves", TaskType: types.TypeLearning, EstimatedTimeMinutes: 45, Status: types.StatusPending}),
					types.BreakEntry(types.Break{DurationMinutes: 20}),
					types.TaskEntry(types.Task{Subject: "math", Chapter: "Algebra", TaskType: types.TypePractice, EstimatedTimeMinutes: 30, Status: types.StatusPending}),
				},
			}}},
			{WeekNumber: 3, Days: []types.Day{{Date: "2025-04-20", Entries: []types.Entry{
				types.TaskEntry(types.Task{Subject: "chem", Chapter: "Acids", TaskType: types.TypeRevision, EstimatedTimeMinutes: 40, Status: types.StatusPending}),
			}}}},
		},
	}
}

func TestSaveEnforcesInvariants(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	require.NoError(t, svc.Save("u1", scrambledPlan()))

	got := repo.Load("u1")
	require.NotNil(t, got)
	for i, w := range got.Weeks {
		assert.Equal(t, i, w.WeekNumber)
	}
	first := got.Weeks[0].Days[0].Entries
	assert.Equal(t, "Physics", first[0].Task.Subject)
	assert.Equal(t, "Mathematics", first[2].Task.Subject)
	assert.Equal(t, "Chemistry", got.Weeks[1].Days[0].Entries[0].Task.Subject)
	// stable ids assigned where missing
	assert.NotEmpty(t, first[0].Task.ID)
	assert.NotEmpty(t, first[2].Task.ID)
	// break entries survive untouched
	assert.True(t, first[1].IsBreak())
	assert.Equal(t, 20, first[1].Break.DurationMinutes)
}

func TestSaveKeepsExistingTaskIDs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	p := scrambledPlan()
	p.Weeks[0].Days[0].Entries[0].Task.ID = "keep-me"
	require.NoError(t, svc.Save("u1", p))
	assert.Equal(t, "keep-me", repo.Load("u1").Weeks[0].Days[0].Entries[0].Task.ID)
}

func TestToggleRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	require.NoError(t, svc.Save("u1", scrambledPlan()))

	p, err := svc.ToggleTask("u1", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, p.Weeks[0].Days[0].Entries[0].Task.Status)

	p, err = svc.ToggleTask("u1", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPending, p.Weeks[0].Days[0].Entries[0].Task.Status)
}

func TestToggleBreakAndOutOfRangeAreNoOps(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	require.NoError(t, svc.Save("u1", scrambledPlan()))
	before := repo.blobs["u1"]

	_, err := svc.ToggleTask("u1", 0, 0, 1) // a break
	require.NoError(t, err)
	_, err = svc.ToggleTask("u1", 5, 0, 0)
	require.NoError(t, err)
	_, err = svc.ToggleTask("u1", 0, 0, 99)
	require.NoError(t, err)

	assert.Equal(t, before, repo.blobs["u1"])
}

func TestToggleWithoutPlan(t *testing.T) {
	svc := NewPlanService(ai.NewMock(), newFakeRepo())
	_, err := svc.ToggleTask("u1", 0, 0, 0)
	assert.Error(t, err)
}

func TestAddTaskToTodayExactDay(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	require.NoError(t, svc.Save("u1", scrambledPlan()))

	now, _ := time.Parse("2006-01-02", "2025-04-13")
	p, err := svc.AddTaskToToday("u1", "bio", "Cells", types.TypeLearning, 25, now)
	require.NoError(t, err)

	entries := p.Weeks[0].Days[0].Entries
	require.Len(t, entries, 4)
	added := entries[3].Task
	require.NotNil(t, added)
	assert.Equal(t, "Biology", added.Subject)
	assert.Equal(t, types.StatusPending, added.Status)
	assert.NotEmpty(t, added.ID)
}

func TestAddTaskToTodayNoMatchPrependsDay(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)
	require.NoError(t, svc.Save("u1", scrambledPlan()))

	now, _ := time.Parse("2006-01-02", "2025-05-01") // matches no stored day
	p, err := svc.AddTaskToToday("u1", "History", "Mughals", types.TypeRevision, 30, now)
	require.NoError(t, err)

	require.Len(t, p.Weeks[0].Days, 2)
	assert.Equal(t, "2025-05-01", p.Weeks[0].Days[0].Date)
	assert.Equal(t, "History", p.Weeks[0].Days[0].Entries[0].Task.Subject)
	assert.Equal(t, "2025-04-13", p.Weeks[0].Days[1].Date)
}

func TestAddTaskToTodayEmptyPlan(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)

	now, _ := time.Parse("2006-01-02", "2025-05-01")
	p, err := svc.AddTaskToToday("u1", "math", "Calculus", types.TypeLearning, 60, now)
	require.NoError(t, err)

	require.Len(t, p.Weeks, 1)
	assert.Equal(t, 0, p.Weeks[0].WeekNumber)
	require.Len(t, p.Weeks[0].Days, 1)
	assert.Equal(t, "Mathematics", p.Weeks[0].Days[0].Entries[0].Task.Subject)
}

func TestSaveLoadResolveScenario(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(ai.NewMock(), repo)

	p := &types.StudyPlan{Weeks: []types.Week{{WeekNumber: 4, Days: []types.Day{{
		Date: "2025-04-13",
		Entries: []types.Entry{
			types.TaskEntry(types.Task{Subject: "Physics", Chapter: "Optics", TaskType: types.TypeLearning, EstimatedTimeMinutes: 45, Status: types.StatusPending}),
			types.BreakEntry(types.Break{DurationMinutes: 20}),
			types.TaskEntry(types.Task{Subject: "math", Chapter: "Algebra", TaskType: types.TypePractice, EstimatedTimeMinutes: 30, Status: types.StatusPending}),
		},
	}}}}}
	require.NoError(t, svc.Save("u1", p))

	loaded := svc.Get("u1")
	require.NotNil(t, loaded)
	assert.Equal(t, 0, loaded.Weeks[0].WeekNumber)
	assert.Equal(t, "Mathematics", loaded.Weeks[0].Days[0].Entries[2].Task.Subject)
	assert.True(t, loaded.Weeks[0].Days[0].Entries[1].IsBreak())

	now, _ := time.Parse("2006-01-02", "2025-04-13")
	res := today.Resolve(loaded, now)
	require.NotNil(t, res)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, "Physics", res.Entries[0].Subject)
	assert.Equal(t, "Mathematics", res.Entries[1].Subject)
}

func TestGenerateFallsBackToMock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewPlanService(failingClient{}, repo)

	p, err := svc.Generate("u1", types.PlanRequest{
		Subjects:        []string{"math"},
		StartDate:       "2025-04-13",
		TargetDate:      "2025-04-20",
		DaysUntilTarget: 7,
		DailyMinutes:    60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, p.Weeks)
	// fallback output still goes through the save path invariants
	stored := repo.Load("u1")
	require.NotNil(t, stored)
	assert.Equal(t, "Mathematics", stored.Weeks[0].Days[0].Entries[0].Task.Subject)
	assert.NotEmpty(t, stored.Weeks[0].Days[0].Entries[0].Task.ID)
}
