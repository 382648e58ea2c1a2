package middleware

import "github.com/gofiber/fiber/v3"

// ErrorRouteNotFound возвращается для неизвестных маршрутов.
const ErrorRouteNotFound = "route not found"

// NotFound отвечает 404 на запросы, не попавшие ни в один маршрут.
func NotFound(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": ErrorRouteNotFound,
	})
}
