package handler

import (
	"errors"

	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/MirrorChyan/macdl/internal/pkg/restserver/response"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func Error(c *fiber.Ctx, err error) error {

	var (
		fe *fiber.Error
		be *errs.Error
	)
	switch {

	case err == nil:
		return nil

	case errors.As(err, &fe):
		return fiber.DefaultErrorHandler(c, fe)

	case errors.As(err, &be):
		if be.HTTPCode() >= fiber.StatusInternalServerError {
			zap.L().Error("request failed",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		}
		resp := response.BusinessError(
			be.Message(),
			be.Details(),
		).With(be.BizCode())
		return c.Status(be.HTTPCode()).JSON(resp)

	default:
		zap.L().Error("unexpected error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		resp := response.UnexpectedError()
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
