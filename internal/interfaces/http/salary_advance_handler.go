package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/taller-api/internal/application/dto"
	"github.com/jhoicas/taller-api/internal/application/payroll"
	"github.com/jhoicas/taller-api/internal/domain"
)

// SalaryAdvanceHandler maneja los anticipos de nómina (protegido).
type SalaryAdvanceHandler struct {
	uc *payroll.SalaryAdvanceUseCase
}

// NewSalaryAdvanceHandler construye el handler.
func NewSalaryAdvanceHandler(uc *payroll.SalaryAdvanceUseCase) *SalaryAdvanceHandler {
	return &SalaryAdvanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar anticipo de nómina
// @Tags         salary-advances
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalaryAdvanceRequest  true  "Anticipo"
// @Success      201   {object}  dto.SalaryAdvanceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/salary-advances [post]
func (h *SalaryAdvanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalaryAdvanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
		}
		if errors.Is(err, domain.ErrNotEligible) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ELIGIBLE", Message: "el trabajador no es elegible para anticipos"})
		}
		if errors.Is(err, domain.ErrInsufficientBalance) {
			// El mensaje incluye monto solicitado y disponible.
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXCEEDS_AVAILABLE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el monto debe ser mayor a cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener anticipo por ID
// @Tags         salary-advances
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del anticipo"
// @Success      200  {object}  dto.SalaryAdvanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salary-advances/{id} [get]
func (h *SalaryAdvanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "anticipo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar anticipos
// @Tags         salary-advances
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.SalaryAdvanceListResponse
// @Router       /api/salary-advances [get]
func (h *SalaryAdvanceHandler) List(c *fiber.Ctx) error {
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

// ListByWorker godoc
// @Summary      Listar anticipos de un trabajador
// @Tags         salary-advances
// @Security     Bearer
// @Produce      json
// @Param        workerId        path   string  true   "ID del trabajador"
// @Param        current_period  query  bool    false  "Solo el período de pago actual"
// @Success      200  {object}  dto.SalaryAdvanceListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salary-advances/worker/{workerId} [get]
func (h *SalaryAdvanceHandler) ListByWorker(c *fiber.Ctx) error {
	workerID := c.Params("workerId")
	currentPeriodOnly := c.QueryBool("current_period", false)
	out, err := h.uc.ListByWorker(workerID, currentPeriodOnly, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Available godoc
// @Summary      Monto disponible de anticipo en el período actual
// @Tags         salary-advances
// @Security     Bearer
// @Produce      json
// @Param        workerId  path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.AvailableAdvanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/salary-advances/worker/{workerId}/available [get]
func (h *SalaryAdvanceHandler) Available(c *fiber.Ctx) error {
	out, err := h.uc.Available(c.Params("workerId"), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trabajador no encontrado"})
		}
		if errors.Is(err, domain.ErrNotEligible) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_ELIGIBLE", Message: "el trabajador no es elegible para anticipos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar anticipo
// @Tags         salary-advances
// @Security     Bearer
// @Param        id  path  string  true  "ID del anticipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salary-advances/{id} [delete]
func (h *SalaryAdvanceHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "anticipo no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
