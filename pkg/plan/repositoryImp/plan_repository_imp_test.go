package repositoryImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studypal/entities"
	"studypal/pkg/plan/types"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.KVEntry{}))
	return db
}

func samplePlan() *types.StudyPlan {
	return &types.StudyPlan{
		TargetDate: "2025-06-01",
		Weeks: []types.Week{{
			WeekNumber: 0,
			Days: []types.Day{{
				Date: "2025-04-13",
				Entries: []types.Entry{
					types.TaskEntry(types.Task{ID: "t1", Subject: "Physics", Chapter: "Waves", TaskType: types.TypeLearning, EstimatedTimeMinutes: 45, Status: types.StatusPending}),
					types.BreakEntry(types.Break{DurationMinutes: 20}),
				},
			}},
		}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo := New(openTestDB(t))
	require.NoError(t, repo.Save("u1", samplePlan()))

	got := repo.Load("u1")
	require.NotNil(t, got)
	require.Len(t, got.Weeks, 1)
	require.Len(t, got.Weeks[0].Days[0].Entries, 2)
	assert.Equal(t, "Physics", got.Weeks[0].Days[0].Entries[0].Task.Subject)
	assert.True(t, got.Weeks[0].Days[0].Entries[1].IsBreak())
	assert.Equal(t, 20, got.Weeks[0].Days[0].Entries[1].Break.DurationMinutes)
}

func TestLoadAbsent(t *testing.T) {
	repo := New(openTestDB(t))
	assert.Nil(t, repo.Load("nobody"))
}

func TestLoadUnparsableBlob(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&entities.KVEntry{Key: "study_plan:u1", Value: "{not json"}).Error)
	assert.Nil(t, New(db).Load("u1"))
}

func TestLoadVersionZeroBlob(t *testing.T) {
	db := openTestDB(t)
	// bare plan JSON written before the schema envelope existed
	raw := `{"targetDate":"2025-06-01","weeks":[{"weekNumber":7,"days":[{"date":"2025-04-13","entries":[{"subject":"math","chapter":"Algebra","taskType":"learning","estimatedTime":30,"status":"pending"},{"break":15}]}]}]}`
	require.NoError(t, db.Create(&entities.KVEntry{Key: "study_plan:u1", Value: raw}).Error)

	got := New(db).Load("u1")
	require.NotNil(t, got)
	require.Len(t, got.Weeks, 1)
	entries := got.Weeks[0].Days[0].Entries
	require.Len(t, entries, 2)
	assert.Equal(t, "math", entries[0].Task.Subject)
	assert.True(t, entries[1].IsBreak())
}

func TestSaveOverwrites(t *testing.T) {
	repo := New(openTestDB(t))
	require.NoError(t, repo.Save("u1", samplePlan()))

	replacement := &types.StudyPlan{TargetDate: "2025-07-01", Weeks: []types.Week{}}
	require.NoError(t, repo.Save("u1", replacement))

	got := repo.Load("u1")
	require.NotNil(t, got)
	assert.Equal(t, "2025-07-01", got.TargetDate)
	assert.Empty(t, got.Weeks)
}
