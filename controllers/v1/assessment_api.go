package apiv1

import (
	"talentflow-backend/controllers"
	assessmenthandler "talentflow-backend/lib/assessment"
	"talentflow-backend/lib/simulator"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	assessmentapimodels "talentflow-backend/models/api/assessment"

	"github.com/gofiber/fiber/v2"
)

type assessmentApiController struct {
	controllers.BaseAPIController
}

func InitAssessmentApiRouters(app fiber.Router) {
	controller := assessmentApiController{}
	writeSim := middleware.WriteSimulation(simulator.Instance)
	app.Route("jobs/:jobId/assessments", func(router fiber.Router) {
		router.Get("", controller.listByJob)
		router.Post("", writeSim, controller.create)
	})
	app.Route("assessments", func(router fiber.Router) {
		router.Post("responses", writeSim, controller.submitResponse)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", writeSim, controller.update)
			idRoute.Delete("", writeSim, controller.delete)
		})
	})
}

// @Summary Опросники вакансии
// @Tags Опросники
// @Description Опросники вакансии
// @Param   jobId	path	int	true	"job ID"
// @Success 200 {array} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{jobId}/assessments [get]
func (c *assessmentApiController) listByJob(ctx *fiber.Ctx) error {
	jobID, err := c.GetIDByKey(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := assessmenthandler.Instance.ListByJob(jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка опросников")
	}
	return ctx.Status(fiber.StatusOK).JSON(list)
}

// @Summary Создание опросника
// @Tags Опросники
// @Description Создание опросника для вакансии
// @Param   jobId	path	int	true	"job ID"
// @Param	body body	 assessmentapimodels.AssessmentData	true	"request body"
// @Success 201 {object} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{jobId}/assessments [post]
func (c *assessmentApiController) create(ctx *fiber.Ctx) error {
	jobID, err := c.GetIDByKey(ctx, "jobId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.AssessmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.Create(jobID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания опросника")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Получение опросника по ИД
// @Tags Опросники
// @Description Получение опросника по ИД
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/{id} [get]
func (c *assessmentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения опросника")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "опросник не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Полная замена опросника
// @Tags Опросники
// @Description Полная замена опросника по ИД
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 assessmentapimodels.AssessmentData	true	"request body"
// @Success 200 {object} dbmodels.Assessment
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/{id} [put]
func (c *assessmentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload assessmentapimodels.AssessmentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения опросника")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "опросник не найден")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Удаление опросника
// @Tags Опросники
// @Description Удаление опросника, ответы кандидатов остаются
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/{id} [delete]
func (c *assessmentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = assessmenthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления опросника")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Отправка ответов на опросник
// @Tags Опросники
// @Description Отправка ответов кандидата, повторные отправки не дедуплицируются
// @Param	body body	 assessmentapimodels.ResponseData	true	"request body"
// @Success 201 {object} dbmodels.AssessmentResponse
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/assessments/responses [post]
func (c *assessmentApiController) submitResponse(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.ResponseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := assessmenthandler.Instance.SubmitResponse(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения ответов на опросник")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}
