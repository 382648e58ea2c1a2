// Package middleware содержит промежуточное ПО для HTTP обработчиков fiber.
package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notesync/pkg/logger"
)

// HeaderRequestID - заголовок, в котором передается идентификатор запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware кладет идентификатор запроса в контекст обработчика.
// Идентификатор берется из заголовка или генерируется и возвращается клиенту.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx, requestID := logger.WithRequestID(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.SetContext(requestCtx)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}
