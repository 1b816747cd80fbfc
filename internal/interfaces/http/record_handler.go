package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/records"
)

// RecordHandler maneja el parte diario de emergencias. El alcance por
// hospital sale siempre del actor autenticado (los filtros de query solo
// aplican para administradores).
type RecordHandler struct {
	uc *records.UseCase
}

// NewRecordHandler construye el handler de registros.
func NewRecordHandler(uc *records.UseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros (filtrado, más reciente primero)
// @Tags         registros
// @Produce      json
// @Security     BearerAuth
// @Param        hospital  query  string  false  "solo admin"
// @Param        desde     query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta     query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {object}  dto.RecordListResponse
// @Router       /api/registros [get]
func (h *RecordHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c), c.Query("hospital"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro del día
// @Tags         registros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RecordInput  true  "parte diario"
// @Success      201   {object}  dto.RecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "existing_id apunta al registro que ya ocupa fecha+hospital"
// @Router       /api/registros [post]
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Detalle de registro
// @Tags         registros
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "record id"
// @Success      200  {object}  dto.RecordResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [get]
func (h *RecordHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar registro
// @Tags         registros
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "record id"
// @Param        body  body  dto.RecordInput  true  "parte diario"
// @Success      200   {object}  dto.RecordResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [put]
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var in dto.RecordInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro (solo admin)
// @Tags         registros
// @Security     BearerAuth
// @Param        id  path  string  true  "record id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/registros/{id} [delete]
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
