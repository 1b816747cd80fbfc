package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
	"github.com/tu-usuario/emergencias-api/internal/domain"
)

// domainError mapea los errores de dominio a respuestas HTTP. Todos los
// handlers usan el mismo mapeo para que la API sea consistente:
//
//	ErrInvalidCredentials → 401
//	ErrForbidden          → 403
//	ErrNotFound           → 404
//	duplicados            → 409 (registro duplicado incluye existing_id)
//	entrada inválida      → 400
//	lo demás              → 500 INTERNAL
func domainError(c *fiber.Ctx, err error) error {
	var dup *records.DuplicateRecordError
	if errors.As(err, &dup) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:       "DUPLICATE_RECORD",
			Message:    "ya existe un registro para esa fecha y hospital",
			ExistingID: dup.ExistingID,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operación no permitida para este usuario"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicateRecord):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_RECORD", Message: "ya existe un registro para esa fecha y hospital"})
	case errors.Is(err, domain.ErrDuplicateHospital):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_HOSPITAL", Message: "ya existe un hospital con ese nombre"})
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USER_EXISTS", Message: "el username ya está registrado"})
	case errors.Is(err, domain.ErrInvalidHospital):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_HOSPITAL", Message: "hospital inexistente o inactivo"})
	case errors.Is(err, domain.ErrSelfDelete):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SELF_DELETE", Message: "un administrador no puede eliminar su propia cuenta"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
