package apiv1

import (
	"talentflow-backend/controllers"
	"talentflow-backend/db"

	"github.com/gofiber/fiber/v2"
)

type systemApiController struct {
	controllers.BaseAPIController
}

func InitSystemApiRouters(app fiber.Router) {
	controller := systemApiController{}
	app.Get("health", controller.health)
}

// @Summary Проверка работоспособности
// @Tags Система
// @Description Проверка работоспособности сервиса и соединения с базой
// @Success 200 {object} map[string]string
// @Failure 500 {object} apimodels.ErrorResponse
// @router /api/health [get]
func (c *systemApiController) health(ctx *fiber.Ctx) error {
	if err := db.PingDB(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Нет соединения с базой данных")
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
