package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/usecase"
)

// HospitalHandler maneja el catálogo de hospitales. El CRUD es solo admin;
// el listado de activos lo usan todos los roles para poblar selectores.
type HospitalHandler struct {
	uc *usecase.HospitalUseCase
}

// NewHospitalHandler construye el handler de hospitales.
func NewHospitalHandler(uc *usecase.HospitalUseCase) *HospitalHandler {
	return &HospitalHandler{uc: uc}
}

// ListActive godoc
// @Summary      Hospitales activos (selección)
// @Tags         hospitales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HospitalListResponse
// @Router       /api/hospitales/activos [get]
func (h *HospitalHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Catálogo completo de hospitales
// @Tags         hospitales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.HospitalListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/hospitales [get]
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear hospital
// @Tags         hospitales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateHospitalRequest  true  "nombre"
// @Success      201   {object}  dto.HospitalResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hospitales [post]
func (h *HospitalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar hospital (nombre o estado)
// @Tags         hospitales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "hospital id"
// @Param        body  body  dto.UpdateHospitalRequest  true  "nombre, activo"
// @Success      200   {object}  dto.HospitalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/hospitales/{id} [put]
func (h *HospitalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateHospitalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar hospital (baja lógica)
// @Tags         hospitales
// @Security     BearerAuth
// @Param        id  path  string  true  "hospital id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/hospitales/{id} [delete]
func (h *HospitalHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
