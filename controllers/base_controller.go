package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "talentflow-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

// GetID читает числовой ид записи из параметра пути id
func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (uint, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (uint, error) {
	value := ctx.Params(key, "")
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.Errorf("некорректный идентификатор записи: %v", value)
	}
	return uint(id), nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"method": ctx.Method(),
		"path":   ctx.Path(),
	})
}

// SendError пишет ошибку в лог и отдаёт 500 с единым телом ошибки
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	logger.WithError(err).Error(hMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
}

// SendNotFound отдаёт единый 404 для отсутствующей записи
func (c *BaseAPIController) SendNotFound(ctx *fiber.Ctx, hMsg string) error {
	return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(hMsg))
}
