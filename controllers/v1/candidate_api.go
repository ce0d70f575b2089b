package apiv1

import (
	"fmt"
	"strconv"

	"talentflow-backend/controllers"
	candidatehandler "talentflow-backend/lib/candidate"
	xlsexport "talentflow-backend/lib/export/xls"
	jobhandler "talentflow-backend/lib/job"
	"talentflow-backend/lib/simulator"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	candidateapimodels "talentflow-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app fiber.Router) {
	controller := candidateApiController{}
	writeSim := middleware.WriteSimulation(simulator.Instance)
	app.Route("jobs/:jobId/candidates", func(router fiber.Router) {
		router.Get("", controller.listByJob)
		router.Get("export", controller.export)
	})
	app.Route("candidates/:id", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Put("", writeSim, controller.update)
		router.Post("notes", writeSim, controller.addNote)
		router.Delete("notes/:noteId", writeSim, controller.deleteNote)
	})
}

// @Summary Кандидаты вакансии
// @Tags Кандидаты
// @Description Кандидаты вакансии с фильтром по этапу
// @Param   jobId	path	int		true	"job ID"
// @Param	stage	query	string	false	"этап или all"
// @Success 200 {array} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{jobId}/candidates [get]
func (c *candidateApiController) listByJob(ctx *fiber.Ctx) error {
	jobID, err := c.GetIDByKey(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter candidateapimodels.CandidateFilter
	if err = ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры фильтра"))
	}
	if err = filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := candidatehandler.Instance.ListByJob(jobID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Выгрузка кандидатов вакансии в xlsx
// @Tags Кандидаты
// @Description Выгрузка кандидатов вакансии в xlsx
// @Param   jobId	path	int		true	"job ID"
// @Param	stage	query	string	false	"этап или all"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{jobId}/candidates/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	jobID, err := c.GetIDByKey(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter candidateapimodels.CandidateFilter
	if err = ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры фильтра"))
	}
	if err = filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	job, err := jobhandler.Instance.GetByID(jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	if job == nil {
		return c.SendNotFound(ctx, "вакансия не найдена")
	}
	list, err := candidatehandler.Instance.ListByJob(jobID, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка кандидатов")
	}
	buf, err := xlsexport.Instance.ExportCandidateList(job.Title, list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки кандидатов")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="candidates_%d.xlsx"`, jobID))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Получение кандидата по ИД
// @Tags Кандидаты
// @Description Получение кандидата по ИД
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/{id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения кандидата")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "кандидат не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Полная замена кандидата
// @Tags Кандидаты
// @Description Полная замена кандидата, историю этапов ведёт сервер
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/{id} [put]
func (c *candidateApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.CandidateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения кандидата")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "кандидат не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Добавление заметки
// @Tags Кандидаты
// @Description Добавление заметки к кандидату
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 candidateapimodels.NoteRequest	true	"request body"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/notes [post]
func (c *candidateApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.NoteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatehandler.Instance.AddNote(id, payload.NoteText)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления заметки")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "кандидат не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Удаление заметки
// @Tags Кандидаты
// @Description Удаление заметки кандидата по ИД заметки
// @Param   id		path	int	true	"rec ID"
// @Param   noteId	path	int	true	"note ID"
// @Success 200 {object} dbmodels.Candidate
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/candidates/{id}/notes/{noteId} [delete]
func (c *candidateApiController) deleteNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	noteID, err := strconv.ParseInt(ctx.Params("noteId", ""), 10, 64)
	if err != nil || noteID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("некорректный идентификатор заметки"))
	}
	rec, err := candidatehandler.Instance.DeleteNote(id, noteID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заметки")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "кандидат не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}
