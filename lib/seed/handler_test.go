package seedhandler

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&dbmodels.Job{},
		&dbmodels.Candidate{},
		&dbmodels.Assessment{},
		&dbmodels.AssessmentResponse{},
	))
	return gdb
}

func TestSeedRun(t *testing.T) {
	gdb := newTestDB(t)
	require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeForce))

	var jobs []dbmodels.Job
	require.NoError(t, gdb.Order("sort_order asc").Find(&jobs).Error)
	var candidates []dbmodels.Candidate
	require.NoError(t, gdb.Find(&candidates).Error)
	var assessments []dbmodels.Assessment
	require.NoError(t, gdb.Find(&assessments).Error)

	t.Run(`jobs: 25 records, unique titles, 2-6 tags`, func(t *testing.T) {
		require.Len(t, jobs, jobCount)
		titles := map[string]bool{}
		for idx, job := range jobs {
			require.NotEmpty(t, job.Title)
			require.False(t, titles[job.Title], "название %q повторяется", job.Title)
			titles[job.Title] = true
			require.Equal(t, idx, job.SortOrder)
			require.True(t, job.Status.IsValid())
			require.GreaterOrEqual(t, len(job.Tags), 2)
			require.LessOrEqual(t, len(job.Tags), 6)
			require.NotNil(t, job.DatePosted)
			require.NotEmpty(t, job.Requirements)
		}
	})

	t.Run(`candidates: 1000 records, at least 3 per job`, func(t *testing.T) {
		require.Len(t, candidates, candidateCount)
		perJob := map[uint]int{}
		jobIDs := map[uint]bool{}
		for _, job := range jobs {
			jobIDs[job.ID] = true
		}
		for _, cand := range candidates {
			require.True(t, jobIDs[cand.JobID], "кандидат ссылается на несуществующую вакансию %v", cand.JobID)
			perJob[cand.JobID]++
		}
		for _, job := range jobs {
			require.GreaterOrEqual(t, perJob[job.ID], guaranteedPerJob, "вакансия %v без кандидатов", job.ID)
		}
	})

	t.Run(`candidates: stage history is consistent`, func(t *testing.T) {
		for _, cand := range candidates {
			require.NotEmpty(t, cand.StageHistory)
			require.Equal(t, models.StageApplied, cand.StageHistory[0].Stage)
			require.Equal(t, cand.CurrentStage, cand.StageHistory.LastStage())
			for hi := 1; hi < len(cand.StageHistory); hi++ {
				prev := cand.StageHistory[hi-1]
				curr := cand.StageHistory[hi]
				require.False(t, curr.Timestamp.Before(prev.Timestamp), "история этапов идёт назад во времени")
				require.Greater(t, models.StageIndex(curr.Stage), models.StageIndex(prev.Stage))
			}
		}
	})

	t.Run(`assessments: 3-4 per job with at least 10 questions`, func(t *testing.T) {
		perJob := map[uint]int{}
		for _, rec := range assessments {
			perJob[rec.JobID]++
			require.NotEmpty(t, rec.Title)
			require.GreaterOrEqual(t, rec.Sections.QuestionCount(), minQuestionsPerKind)
			for _, section := range rec.Sections {
				for _, question := range section.Questions {
					require.NotEmpty(t, question.ID)
					require.NotEmpty(t, question.Text)
					require.NotNil(t, question.Details)
				}
			}
		}
		for _, job := range jobs {
			require.GreaterOrEqual(t, perJob[job.ID], 3)
			require.LessOrEqual(t, perJob[job.ID], 4)
		}
	})
}

func TestSeedDeterminism(t *testing.T) {
	run := func() ([]dbmodels.Job, []dbmodels.Candidate) {
		gdb := newTestDB(t)
		require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeForce))
		var jobs []dbmodels.Job
		require.NoError(t, gdb.Order("sort_order asc").Find(&jobs).Error)
		var candidates []dbmodels.Candidate
		require.NoError(t, gdb.Order("sort_order asc").Find(&candidates).Error)
		return jobs, candidates
	}
	jobs1, candidates1 := run()
	jobs2, candidates2 := run()

	require.Equal(t, len(jobs1), len(jobs2))
	for idx := range jobs1 {
		require.Equal(t, jobs1[idx].Title, jobs2[idx].Title)
		require.Equal(t, jobs1[idx].Status, jobs2[idx].Status)
		require.Equal(t, jobs1[idx].Tags, jobs2[idx].Tags)
	}
	require.Equal(t, len(candidates1), len(candidates2))
	for idx := range candidates1 {
		require.Equal(t, candidates1[idx].Email, candidates2[idx].Email)
		require.Equal(t, candidates1[idx].CurrentStage, candidates2[idx].CurrentStage)
	}
}

func TestSeedModes(t *testing.T) {
	t.Run(`off: never seeds`, func(t *testing.T) {
		gdb := newTestDB(t)
		require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeOff))
		var count int64
		require.NoError(t, gdb.Model(&dbmodels.Job{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})

	t.Run(`if_empty: seeds empty base and skips populated`, func(t *testing.T) {
		gdb := newTestDB(t)
		require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeIfEmpty))
		var count int64
		require.NoError(t, gdb.Model(&dbmodels.Job{}).Count(&count).Error)
		require.EqualValues(t, jobCount, count)

		var job dbmodels.Job
		require.NoError(t, gdb.Order("sort_order asc").First(&job).Error)
		customTitle := "Manually Renamed Job"
		require.NoError(t, gdb.Model(&job).Update("title", customTitle).Error)

		require.NoError(t, NewInstance(gdb, 7).Run(models.SeedModeIfEmpty))
		var after dbmodels.Job
		require.NoError(t, gdb.Where("id = ?", job.ID).First(&after).Error)
		require.Equal(t, customTitle, after.Title)
	})

	t.Run(`force: replaces existing data`, func(t *testing.T) {
		gdb := newTestDB(t)
		require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeForce))
		require.NoError(t, NewInstance(gdb, 42).Run(models.SeedModeForce))
		var count int64
		require.NoError(t, gdb.Model(&dbmodels.Job{}).Count(&count).Error)
		require.EqualValues(t, jobCount, count)
		require.NoError(t, gdb.Model(&dbmodels.Candidate{}).Count(&count).Error)
		require.EqualValues(t, candidateCount, count)
	})

	t.Run(`unknown mode is rejected`, func(t *testing.T) {
		gdb := newTestDB(t)
		require.Error(t, NewInstance(gdb, 42).Run(models.SeedMode("sometimes")))
	})
}
