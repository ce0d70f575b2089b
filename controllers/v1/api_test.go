package apiv1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"talentflow-backend/db"
	assessmenthandler "talentflow-backend/lib/assessment"
	candidatehandler "talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	jobhandler "talentflow-backend/lib/job"
	"talentflow-backend/lib/simulator"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"
)

func setupApp(t *testing.T, simErr error) *fiber.App {
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
	db.DB = gdb
	simulator.Instance = simulator.NewStatic(simErr)
	jobhandler.NewHandler()
	candidatehandler.NewHandler()
	assessmenthandler.NewHandler()
	xlsexport.NewHandler()

	app := fiber.New()
	api := app.Group("/api")
	InitSystemApiRouters(api)
	InitJobApiRouters(api)
	InitCandidateApiRouters(api)
	InitAssessmentApiRouters(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestJobApi(t *testing.T) {
	app := setupApp(t, nil)

	t.Run(`create returns 201 with the record`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{
			"title": "Go Developer",
			"tags":  []string{"Go", "Docker"},
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var job dbmodels.Job
		decode(t, resp, &job)
		require.NotZero(t, job.ID)
		require.Equal(t, models.JobStatusActive, job.Status)
	})

	t.Run(`list returns envelope with totalCount`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs?status=active", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var envelope struct {
			Data       []dbmodels.Job `json:"data"`
			TotalCount int            `json:"totalCount"`
		}
		decode(t, resp, &envelope)
		require.Equal(t, 1, envelope.TotalCount)
		require.Len(t, envelope.Data, 1)
	})

	t.Run(`missing job returns uniform 404 body`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/99999", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		var body map[string]string
		decode(t, resp, &body)
		require.Contains(t, body, "message")
		require.NotEmpty(t, body["message"])
	})

	t.Run(`reorder path wins over id match`, func(t *testing.T) {
		second := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Second Job"})
		require.Equal(t, fiber.StatusCreated, second.StatusCode)
		var secondJob dbmodels.Job
		decode(t, second, &secondJob)

		resp := doJSON(t, app, fiber.MethodPatch, "/api/jobs/reorder", fiber.Map{
			"reorderedJobs": []fiber.Map{
				{"id": secondJob.ID},
				{"id": 1},
			},
		})
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		list := doJSON(t, app, fiber.MethodGet, "/api/jobs", nil)
		var envelope struct {
			Data []dbmodels.Job `json:"data"`
		}
		decode(t, list, &envelope)
		require.Equal(t, "Second Job", envelope.Data[0].Title)
	})

	t.Run(`bad status value returns 400`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs?status=paused", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`delete returns 204`, func(t *testing.T) {
		created := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Temp"})
		var job dbmodels.Job
		decode(t, created, &job)
		resp := doJSON(t, app, fiber.MethodDelete, "/api/jobs/"+itoa(job.ID), nil)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	})

	t.Run(`tags endpoint returns sorted unique tags`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/tags", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var tags []string
		decode(t, resp, &tags)
		require.Equal(t, []string{"Docker", "Go"}, tags)
	})
}

func TestCandidateApi(t *testing.T) {
	app := setupApp(t, nil)
	created := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Job"})
	var job dbmodels.Job
	decode(t, created, &job)

	require.NoError(t, db.DB.Create(&dbmodels.Candidate{
		JobID:        job.ID,
		Name:         "Test Candidate",
		Email:        "test@example.com",
		CurrentStage: models.StageApplied,
		StageHistory: dbmodels.StageHistory{{Stage: models.StageApplied}},
	}).Error)
	var cand dbmodels.Candidate
	require.NoError(t, db.DB.First(&cand).Error)

	t.Run(`list by job returns plain array`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/"+itoa(job.ID)+"/candidates", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var list []dbmodels.Candidate
		decode(t, resp, &list)
		require.Len(t, list, 1)
		require.Equal(t, "Test Candidate", list[0].Name)
	})

	t.Run(`list by empty job returns empty array, not null`, func(t *testing.T) {
		empty := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Без откликов"})
		var emptyJob dbmodels.Job
		decode(t, empty, &emptyJob)
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/"+itoa(emptyJob.ID)+"/candidates", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "[]", strings.TrimSpace(string(body)))
	})

	t.Run(`put moves stage and grows history`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPut, "/api/candidates/"+itoa(cand.ID), fiber.Map{
			"jobId":        job.ID,
			"name":         cand.Name,
			"email":        cand.Email,
			"currentStage": "Screening",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var updated dbmodels.Candidate
		decode(t, resp, &updated)
		require.Equal(t, models.StageScreening, updated.CurrentStage)
		require.Len(t, updated.StageHistory, 2)
	})

	t.Run(`notes add and delete`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/candidates/"+itoa(cand.ID)+"/notes", fiber.Map{
			"noteText": "Хороший кандидат",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var withNote dbmodels.Candidate
		decode(t, resp, &withNote)
		require.Len(t, withNote.Notes, 1)

		noteID := withNote.Notes[0].NoteID
		resp = doJSON(t, app, fiber.MethodDelete,
			"/api/candidates/"+itoa(cand.ID)+"/notes/"+i64toa(noteID), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var withoutNote dbmodels.Candidate
		decode(t, resp, &withoutNote)
		require.Empty(t, withoutNote.Notes)
	})

	t.Run(`unknown stage filter returns 400`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/"+itoa(job.ID)+"/candidates?stage=Ghosted", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`xlsx export returns a spreadsheet`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/"+itoa(job.ID)+"/candidates/export", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, resp.Header.Get(fiber.HeaderContentType), "spreadsheet")
	})
}

func TestAssessmentApi(t *testing.T) {
	app := setupApp(t, nil)
	created := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Job"})
	var job dbmodels.Job
	decode(t, created, &job)

	t.Run(`create fills missing section and question ids`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/jobs/"+itoa(job.ID)+"/assessments", fiber.Map{
			"title": "Технический опросник",
			"sections": []fiber.Map{{
				"title": "Основное",
				"questions": []fiber.Map{{
					"text":    "Ваш стаж?",
					"details": fiber.Map{"type": "short-text", "maxLength": 50},
				}},
			}},
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var rec dbmodels.Assessment
		decode(t, resp, &rec)
		require.NotZero(t, rec.ID)
		require.Equal(t, job.ID, rec.JobID)
		require.NotEmpty(t, rec.Sections[0].ID)
		require.NotEmpty(t, rec.Sections[0].Questions[0].ID)
	})

	t.Run(`list by job returns plain array`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs/"+itoa(job.ID)+"/assessments", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var list []dbmodels.Assessment
		decode(t, resp, &list)
		require.Len(t, list, 1)
		require.Equal(t, "Технический опросник", list[0].Title)
	})

	t.Run(`invalid condition reference returns 400`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/jobs/"+itoa(job.ID)+"/assessments", fiber.Map{
			"title": "Опросник",
			"sections": []fiber.Map{{
				"title": "Основное",
				"questions": []fiber.Map{{
					"id":        "q1",
					"text":      "Уточните",
					"details":   fiber.Map{"type": "long-text"},
					"condition": fiber.Map{"questionId": "missing", "value": "Да"},
				}},
			}},
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`responses are stored without dedupe`, func(t *testing.T) {
		payload := fiber.Map{
			"jobId":       job.ID,
			"candidateId": 1,
			"responses":   fiber.Map{"q1": "ответ"},
		}
		first := doJSON(t, app, fiber.MethodPost, "/api/assessments/responses", payload)
		require.Equal(t, fiber.StatusCreated, first.StatusCode)
		second := doJSON(t, app, fiber.MethodPost, "/api/assessments/responses", payload)
		require.Equal(t, fiber.StatusCreated, second.StatusCode)

		var count int64
		require.NoError(t, db.DB.Model(&dbmodels.AssessmentResponse{}).Count(&count).Error)
		require.EqualValues(t, 2, count)
	})
}

func TestWriteSimulation(t *testing.T) {
	app := setupApp(t, simulator.ErrSimulated)

	t.Run(`write is rejected with 500 and not applied`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodPost, "/api/jobs", fiber.Map{"title": "Doomed Job"})
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		var body map[string]string
		decode(t, resp, &body)
		require.NotEmpty(t, body["message"])

		var count int64
		require.NoError(t, db.DB.Model(&dbmodels.Job{}).Count(&count).Error)
		require.EqualValues(t, 0, count)
	})

	t.Run(`reads are not simulated`, func(t *testing.T) {
		resp := doJSON(t, app, fiber.MethodGet, "/api/jobs", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func i64toa(id int64) string {
	return strconv.FormatInt(id, 10)
}
