package apiv1

import (
	"talentflow-backend/controllers"
	jobhandler "talentflow-backend/lib/job"
	"talentflow-backend/lib/simulator"
	"talentflow-backend/middleware"
	apimodels "talentflow-backend/models/api"
	jobapimodels "talentflow-backend/models/api/job"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app fiber.Router) {
	controller := jobApiController{}
	writeSim := middleware.WriteSimulation(simulator.Instance)
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", writeSim, controller.create)
		// reorder раньше :id, иначе fiber сматчит reorder как ид
		router.Patch("reorder", writeSim, controller.reorder)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", writeSim, controller.update)
			idRoute.Patch("", writeSim, controller.patch)
			idRoute.Delete("", writeSim, controller.delete)
		})
	})
	app.Get("tags", controller.tagList)
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий c фильтром и страницами
// @Param	search		query	string	false	"подстрока названия"
// @Param	status		query	string	false	"статус или all"
// @Param	tags		query	[]string	false	"теги, AND-семантика"
// @Param	page		query	int		false	"страница"
// @Param	pageSize	query	int		false	"записей на странице"
// @Success 200 {object} apimodels.ListResponse{data=[]dbmodels.Job}
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не удалось получить параметры фильтра"))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, totalCount, err := jobhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewListResponse(list, totalCount))
}

// @Summary Получение вакансии по ИД
// @Tags Вакансии
// @Description Получение вакансии по ИД
// @Param   id	path	int	true	"rec ID"
// @Success 200 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вакансии")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "вакансия не найдена")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Description Создание вакансии
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 201 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusCreated).JSON(rec)
}

// @Summary Полная замена вакансии
// @Tags Вакансии
// @Description Полная замена вакансии по ИД
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения вакансии")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "вакансия не найдена")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Частичное обновление вакансии
// @Tags Вакансии
// @Description Частичное обновление, применяются только переданные поля
// @Param   id	path	int	true	"rec ID"
// @Param	body body	 jobapimodels.JobPatch	true	"request body"
// @Success 200 {object} dbmodels.Job
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 404 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [patch]
func (c *jobApiController) patch(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobPatch
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.Patch(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка частичного обновления вакансии")
	}
	if rec == nil {
		return c.SendNotFound(ctx, "вакансия не найдена")
	}
	return ctx.Status(fiber.StatusOK).JSON(rec)
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Description Удаление вакансии, кандидаты и опросники остаются
// @Param   id	path	int	true	"rec ID"
// @Success 204
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = jobhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Пересортировка вакансий
// @Tags Вакансии
// @Description Полная замена ручного порядка переданным списком
// @Param	body body	 jobapimodels.ReorderRequest	true	"request body"
// @Success 204
// @Failure 400 {object} apimodels.ErrorResponse
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/jobs/reorder [patch]
func (c *jobApiController) reorder(ctx *fiber.Ctx) error {
	var payload jobapimodels.ReorderRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := jobhandler.Instance.Reorder(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка пересортировки вакансий")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// @Summary Список тегов
// @Tags Вакансии
// @Description Уникальные теги по всем вакансиям, отсортированные по алфавиту
// @Success 200 {array} string
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/tags [get]
func (c *jobApiController) tagList(ctx *fiber.Ctx) error {
	tags, err := jobhandler.Instance.TagList()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка тегов")
	}
	return ctx.Status(fiber.StatusOK).JSON(tags)
}
