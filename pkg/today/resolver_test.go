package today

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studypal/pkg/plan/types"
)

func day(date string, entries ...types.Entry) types.Day {
	return types.Day{Date: date, Entries: entries}
}

func task(subject string) types.Entry {
	return types.TaskEntry(types.Task{Subject: subject, Chapter: "ch", TaskType: types.TypeLearning, EstimatedTimeMinutes: 30, Status: types.StatusPending})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestResolveExactMatch(t *testing.T) {
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{
			day("2025-04-12", task("Physics")),
			day("2025-04-13", task("Physics"), types.BreakEntry(types.Break{DurationMinutes: 20}), task("Mathematics")),
		}},
	}}
	res := Resolve(plan, mustDate(t, "2025-04-13"))
	require.NotNil(t, res)
	assert.Equal(t, 0, res.WeekIndex)
	assert.Equal(t, 1, res.DayIndex)
	require.Len(t, res.Entries, 2) // break excluded
	assert.Equal(t, "Physics", res.Entries[0].Subject)
	assert.Equal(t, "Mathematics", res.Entries[1].Subject)
}

func TestResolveEmbeddedTimestampMatch(t *testing.T) {
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{day("2025-04-13T00:00:00Z", task("Biology"))}},
	}}
	res := Resolve(plan, mustDate(t, "2025-04-13"))
	require.NotNil(t, res)
	assert.Equal(t, "Biology", res.Entries[0].Subject)
}

func TestResolveNearestFuture(t *testing.T) {
	today := mustDate(t, "2025-04-13")
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{
			day("2025-04-10", task("History")),
			day("2025-04-18", task("Chemistry")),
		}},
		{Days: []types.Day{day("2025-04-15", task("Physics"))}},
	}}
	res := Resolve(plan, today)
	require.NotNil(t, res)
	assert.Equal(t, "Physics", res.Entries[0].Subject)
	assert.Equal(t, 1, res.WeekIndex)
	assert.Equal(t, 0, res.DayIndex)
}

func TestResolveNearestFutureTieKeepsFirst(t *testing.T) {
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{day("2025-04-15", task("English"))}},
		{Days: []types.Day{day("2025-04-15", task("Geography"))}},
	}}
	res := Resolve(plan, mustDate(t, "2025-04-13"))
	require.NotNil(t, res)
	assert.Equal(t, 0, res.WeekIndex)
	assert.Equal(t, "English", res.Entries[0].Subject)
}

func TestResolveAllPastFallsBackToFirstDay(t *testing.T) {
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{
			day("2025-03-01", task("Economics")),
			day("2025-03-02", task("History")),
		}},
	}}
	res := Resolve(plan, mustDate(t, "2025-04-13"))
	require.NotNil(t, res)
	assert.Equal(t, 0, res.WeekIndex)
	assert.Equal(t, 0, res.DayIndex)
	assert.Equal(t, "Economics", res.Entries[0].Subject)
}

func TestResolveUnparsableDatesFallBack(t *testing.T) {
	plan := &types.StudyPlan{Weeks: []types.Week{
		{Days: []types.Day{day("week one, monday", task("Physics"))}},
	}}
	res := Resolve(plan, mustDate(t, "2025-04-13"))
	require.NotNil(t, res)
	assert.Equal(t, "Physics", res.Entries[0].Subject)
}

func TestResolveEmptyPlan(t *testing.T) {
	assert.Nil(t, Resolve(nil, time.Now()))
	assert.Nil(t, Resolve(&types.StudyPlan{}, time.Now()))
	assert.Nil(t, Resolve(&types.StudyPlan{Weeks: []types.Week{{}}}, time.Now()))
}

func TestMatchExact(t *testing.T) {
	assert.True(t, MatchExact("2025-04-13", "2025-04-13"))
	assert.True(t, MatchExact("2025-04-13T09:30:00+05:30", "2025-04-13"))
	assert.False(t, MatchExact("2025-04-14", "2025-04-13"))
}
