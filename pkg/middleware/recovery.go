package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notesync/pkg/logger"
)

// Константы для обработки паники.
const (
	LogServerPanic        = "server panic"
	LogFailedSendResponse = "failed to send error response after panic"
	ErrorInternalServer   = "internal server error"
)

// NewRecoveryMiddleware создает промежуточное ПО для восстановления после паники.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				log.Error(requestCtx, LogServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)

				if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": ErrorInternalServer,
				}); err != nil {
					log.Error(requestCtx, LogFailedSendResponse, zap.Error(err))
				}
			}
		}()

		return ctx.Next()
	}
}
