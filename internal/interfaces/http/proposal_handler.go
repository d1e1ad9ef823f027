package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agisales/proposals-api/internal/application/dto"
	"github.com/agisales/proposals-api/internal/application/proposal"
	"github.com/agisales/proposals-api/internal/domain"
)

// ProposalHandler maneja el CRUD de propuestas y las acciones de decisión.
type ProposalHandler struct {
	uc    *proposal.ProposalUseCase
	pdfUC *proposal.PDFUseCase
}

// NewProposalHandler construye el handler de propuestas.
func NewProposalHandler(uc *proposal.ProposalUseCase, pdfUC *proposal.PDFUseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc, pdfUC: pdfUC}
}

// List godoc
// @Summary      Listar propuestas
// @Tags         proposals
// @Produce      json
// @Success      200   {array}   dto.ProposalResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/proposals [get]
func (h *ProposalHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// GetByID godoc
// @Summary      Obtener una propuesta
// @Tags         proposals
// @Produce      json
// @Param        id    path      string  true  "ID de la propuesta"
// @Success      200   {object}  dto.ProposalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id} [get]
func (h *ProposalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return proposalError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear propuesta
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProposalRequest  true  "datos de la propuesta"
// @Success      201   {object}  dto.ProposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/proposals [post]
func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerName == "" || in.CustomerEmail == "" || in.Product == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerName, customerEmail y product son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), Actor(c), in)
	if err != nil {
		return proposalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar propuesta (patch parcial)
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la propuesta"
// @Param        body  body  dto.UpdateProposalRequest  true  "campos a modificar"
// @Success      200   {object}  dto.ProposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id} [patch]
func (h *ProposalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), Actor(c), c.Params("id"), in)
	if err != nil {
		return proposalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar propuesta
// @Tags         proposals
// @Param        id    path  string  true  "ID de la propuesta"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id} [delete]
func (h *ProposalHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return proposalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve godoc
// @Summary      Aprobar propuesta (solo manager)
// @Tags         proposals
// @Produce      json
// @Param        id    path  string  true  "ID de la propuesta"
// @Success      200   {object}  dto.ProposalResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id}/approve [post]
func (h *ProposalHandler) Approve(c *fiber.Ctx) error {
	out, err := h.uc.Approve(c.Context(), Actor(c), c.Params("id"))
	if err != nil {
		return proposalError(c, err)
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar propuesta (solo manager)
// @Tags         proposals
// @Produce      json
// @Param        id    path  string  true  "ID de la propuesta"
// @Success      200   {object}  dto.ProposalResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id}/reject [post]
func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	out, err := h.uc.Reject(c.Context(), Actor(c), c.Params("id"))
	if err != nil {
		return proposalError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Ficha PDF de la propuesta
// @Tags         proposals
// @Produce      application/pdf
// @Param        id    path  string  true  "ID de la propuesta"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/proposals/{id}/pdf [get]
func (h *ProposalHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := h.pdfUC.Generate(c.Context(), id)
	if err != nil {
		return proposalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="proposta-`+id+`.pdf"`)
	return c.Send(data)
}

// proposalError mapea errores de dominio a respuestas HTTP.
func proposalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "propuesta no encontrada"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de propuesta inválidos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
