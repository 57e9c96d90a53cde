package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/payroll"
	"github.com/jhoicas/taller-api/internal/domain"
)

// VacationHandler maneja las solicitudes de vacaciones (protegido).
type VacationHandler struct {
	uc *payroll.VacationUseCase
}

// NewVacationHandler construye el handler.
func NewVacationHandler(uc *payroll.VacationUseCase) *VacationHandler {
	return &VacationHandler{uc: uc}
}

// Create godoc
// @Summary      Solicitar vacaciones
// @Tags         vacations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVacationRequest  true  "Solicitud de vacaciones"
// @Success      201   {object}  dto.VacationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vacations [post]
func (h *VacationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVacationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
		}
		if errors.Is(err, domain.ErrMissingHireDate) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "MISSING_HIRE_DATE", Message: "el trabajador no tiene fecha de ingreso"})
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			// El mensaje incluye días solicitados y disponibles.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_DAYS", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de la solicitud inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener vacación por ID
// @Tags         vacations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la vacación"
// @Success      200  {object}  dto.VacationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacations/{id} [get]
func (h *VacationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar vacaciones
// @Tags         vacations
// @Security     Bearer
// @Produce      json
// @Param        worker_id  query  string  false  "Filtrar por trabajador"
// @Param        limit      query  int     false  "Límite"   default(20)
// @Param        offset     query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.VacationListResponse
// @Router       /api/vacations [get]
func (h *VacationHandler) List(c *fiber.Ctx) error {
	if workerID := c.Query("worker_id"); workerID != "" {
		out, err := h.uc.ListByWorker(workerID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar vacación (fechas, días o estado)
// @Tags         vacations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la vacación"
// @Param        body  body  dto.UpdateVacationRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.VacationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vacations/{id} [put]
func (h *VacationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVacationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado o datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacación no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar vacación
// @Tags         vacations
// @Security     Bearer
// @Param        id  path  string  true  "ID de la vacación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vacations/{id} [delete]
func (h *VacationHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "vacación no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
