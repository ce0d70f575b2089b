package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"talentflow-backend/lib/simulator"
	apimodels "talentflow-backend/models/api"
)

// WriteSimulation применяется только к маршрутам записи: выжидает
// искусственную задержку и с заданной вероятностью прерывает запрос
// до вызова обработчика, мутация в этом случае не выполняется
func WriteSimulation(provider simulator.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := provider.Simulate(); err != nil {
			log.
				WithField("method", c.Method()).
				WithField("path", c.Path()).
				Info("запись прервана симулятором сбоев")
			return c.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		return c.Next()
	}
}
