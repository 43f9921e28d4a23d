package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/pkg/logger"
)

// statusFor status HTTP de cada tipo de error de dominio.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthorized:
		return fiber.StatusForbidden
	case domain.KindInvalidRequest:
		return fiber.StatusUnprocessableEntity
	case domain.KindBookNotFound, domain.KindCustomerNotFound:
		return fiber.StatusNotFound
	case domain.KindBookInvalidStatusTransition:
		return fiber.StatusBadRequest
	case domain.KindAuthenticationFailed, domain.KindUserNotFound, domain.KindInvalidToken:
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// writeError responde errores de dominio con su status y código. Cualquier otro error se devuelve
// tal cual para que lo resuelva el ErrorHandler de la app.
func writeError(c *fiber.Ctx, err error) error {
	de, ok := domain.AsError(err)
	if !ok {
		return err
	}
	status := statusFor(de.Kind)
	resp := dto.ErrorResponse{HTTPCode: status, Message: de.Message, InternalCode: de.Code}
	for _, f := range de.Fields {
		resp.Errors = append(resp.Errors, dto.FieldErrorResponse{Message: f.Message, Field: f.Field})
	}
	return c.Status(status).JSON(resp)
}

// fiberCodes código interno para los errores propios de Fiber (ruta inexistente, método, body).
var fiberCodes = map[int]string{
	fiber.StatusBadRequest:       "INVALID_BODY",
	fiber.StatusNotFound:         "NOT_FOUND",
	fiber.StatusMethodNotAllowed: "METHOD_NOT_ALLOWED",
}

// ErrorHandler último recurso de la app: errores de dominio, de Fiber y 500 para el resto.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if _, ok := domain.AsError(err); ok {
			return writeError(c, err)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code, ok := fiberCodes[fe.Code]
			if !ok {
				code = "INTERNAL"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{HTTPCode: fe.Code, Message: fe.Message, InternalCode: code})
		}
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			HTTPCode:     fiber.StatusInternalServerError,
			Message:      "Internal server error",
			InternalCode: "INTERNAL",
		})
	}
}
