package handler

import (
	"log/slog"

	"go-faktur-api/internal/apperr"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail translates a service error into the HTTP taxonomy. Internal
// failures are logged with their cause; the client only gets the
// generic message.
func fail(c *fiber.Ctx, err error) error {
	appErr := apperr.As(err)
	if appErr.Kind == apperr.Internal {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", appErr.Err)
	}
	return c.Status(appErr.Status()).JSON(fiber.Map{"error": appErr.Message})
}

func parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.Validation, "invalid id")
	}
	return id, nil
}
