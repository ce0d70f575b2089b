package jobhandler

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	jobstore "talentflow-backend/lib/job/store"
	"talentflow-backend/models"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"
	dbmodels "talentflow-backend/models/db"
)

func newTestHandler(t *testing.T) impl {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&dbmodels.Job{}))
	return impl{
		store: jobstore.NewInstance(gdb),
	}
}

func createJob(t *testing.T, h impl, title string, status models.JobStatus, tags []string, order int) *dbmodels.Job {
	t.Helper()
	rec, err := h.Create(jobapimodels.JobData{
		Title:     title,
		Status:    status,
		Tags:      tags,
		SortOrder: order,
	})
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec
}

func TestJobCRUD(t *testing.T) {
	h := newTestHandler(t)

	t.Run(`create assigns id and defaults status to active`, func(t *testing.T) {
		rec, err := h.Create(jobapimodels.JobData{Title: "Backend Developer"})
		require.NoError(t, err)
		require.NotZero(t, rec.ID)
		require.Equal(t, models.JobStatusActive, rec.Status)
	})

	t.Run(`get by unknown id returns nil without error`, func(t *testing.T) {
		rec, err := h.GetByID(99999)
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`update replaces the record`, func(t *testing.T) {
		created := createJob(t, h, "QA Engineer", models.JobStatusActive, []string{"Python"}, 5)
		updated, err := h.Update(created.ID, jobapimodels.JobData{
			Title:  "Senior QA Engineer",
			Status: models.JobStatusArchived,
		})
		require.NoError(t, err)
		require.Equal(t, "Senior QA Engineer", updated.Title)
		require.Equal(t, models.JobStatusArchived, updated.Status)
		require.Empty(t, updated.Tags)
	})

	t.Run(`patch touches only passed fields`, func(t *testing.T) {
		created := createJob(t, h, "Designer", models.JobStatusActive, []string{"Figma"}, 7)
		status := models.JobStatusArchived
		patched, err := h.Patch(created.ID, jobapimodels.JobPatch{Status: &status})
		require.NoError(t, err)
		require.Equal(t, models.JobStatusArchived, patched.Status)
		require.Equal(t, "Designer", patched.Title)
		require.Equal(t, dbmodels.StringArray{"Figma"}, patched.Tags)
	})

	t.Run(`update of missing record returns nil`, func(t *testing.T) {
		rec, err := h.Update(99999, jobapimodels.JobData{Title: "Ghost"})
		require.NoError(t, err)
		require.Nil(t, rec)
	})

	t.Run(`delete removes the record`, func(t *testing.T) {
		created := createJob(t, h, "Temp Job", models.JobStatusActive, nil, 9)
		require.NoError(t, h.Delete(created.ID))
		rec, err := h.GetByID(created.ID)
		require.NoError(t, err)
		require.Nil(t, rec)
	})
}

func TestJobList(t *testing.T) {
	h := newTestHandler(t)
	createJob(t, h, "Go Developer", models.JobStatusActive, []string{"Go", "Docker"}, 0)
	createJob(t, h, "Java Developer", models.JobStatusActive, []string{"Java", "Docker"}, 1)
	createJob(t, h, "Old Go Developer", models.JobStatusArchived, []string{"Go"}, 2)

	t.Run(`search matches title substring case-insensitively`, func(t *testing.T) {
		list, totalCount, err := h.List(jobapimodels.JobFilter{Search: "go dev"})
		require.NoError(t, err)
		require.Equal(t, 2, totalCount)
		require.Len(t, list, 2)
	})

	t.Run(`status filter with all passthrough`, func(t *testing.T) {
		list, totalCount, err := h.List(jobapimodels.JobFilter{Status: "archived"})
		require.NoError(t, err)
		require.Equal(t, 1, totalCount)
		require.Equal(t, "Old Go Developer", list[0].Title)

		_, totalCount, err = h.List(jobapimodels.JobFilter{Status: models.JobStatusAll})
		require.NoError(t, err)
		require.Equal(t, 3, totalCount)
	})

	t.Run(`tags filter uses AND semantics`, func(t *testing.T) {
		list, totalCount, err := h.List(jobapimodels.JobFilter{Tags: []string{"Go", "Docker"}})
		require.NoError(t, err)
		require.Equal(t, 1, totalCount)
		require.Equal(t, "Go Developer", list[0].Title)
	})

	t.Run(`totalCount ignores pagination`, func(t *testing.T) {
		list, totalCount, err := h.List(jobapimodels.JobFilter{
			Pagination: apimodels.Pagination{Page: 1, PageSize: 2},
		})
		require.NoError(t, err)
		require.Equal(t, 3, totalCount)
		require.Len(t, list, 2)

		list, totalCount, err = h.List(jobapimodels.JobFilter{
			Pagination: apimodels.Pagination{Page: 2, PageSize: 2},
		})
		require.NoError(t, err)
		require.Equal(t, 3, totalCount)
		require.Len(t, list, 1)
	})

	t.Run(`page out of range returns empty list with full count`, func(t *testing.T) {
		list, totalCount, err := h.List(jobapimodels.JobFilter{
			Pagination: apimodels.Pagination{Page: 10, PageSize: 10},
		})
		require.NoError(t, err)
		require.Equal(t, 3, totalCount)
		require.Empty(t, list)
	})
}

func TestJobReorder(t *testing.T) {
	h := newTestHandler(t)
	first := createJob(t, h, "First", models.JobStatusActive, nil, 0)
	second := createJob(t, h, "Second", models.JobStatusActive, nil, 1)
	third := createJob(t, h, "Third", models.JobStatusActive, nil, 2)

	t.Run(`reorder rewrites sort order by list position`, func(t *testing.T) {
		err := h.Reorder(jobapimodels.ReorderRequest{
			ReorderedJobs: []dbmodels.Job{*third, *first, *second},
		})
		require.NoError(t, err)
		list, _, err := h.List(jobapimodels.JobFilter{})
		require.NoError(t, err)
		require.Equal(t, []string{"Third", "First", "Second"}, []string{list[0].Title, list[1].Title, list[2].Title})
	})

	t.Run(`reorder with unknown id fails and changes nothing`, func(t *testing.T) {
		err := h.Reorder(jobapimodels.ReorderRequest{
			ReorderedJobs: []dbmodels.Job{*first, {BaseModel: dbmodels.BaseModel{ID: 99999}}},
		})
		require.Error(t, err)
		list, _, err := h.List(jobapimodels.JobFilter{})
		require.NoError(t, err)
		require.Equal(t, "Third", list[0].Title)
	})
}

func TestJobTagList(t *testing.T) {
	h := newTestHandler(t)
	createJob(t, h, "One", models.JobStatusActive, []string{"Go", "Docker"}, 0)
	createJob(t, h, "Two", models.JobStatusArchived, []string{"AWS", "Go"}, 1)

	tags, err := h.TagList()
	require.NoError(t, err)
	require.Equal(t, []string{"AWS", "Docker", "Go"}, tags)
}
