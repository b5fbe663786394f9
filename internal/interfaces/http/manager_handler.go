package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/minimart-api/internal/application/dto"
	"github.com/jhoicas/minimart-api/internal/application/usecase"
)

// ManagerHandler maneja las peticiones HTTP para Manager (protegido).
type ManagerHandler struct {
	uc *usecase.ManagerUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(uc *usecase.ManagerUseCase) *ManagerHandler {
	return &ManagerHandler{uc: uc}
}

// Create crea el perfil de un gerente.
func (h *ManagerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateManagerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todos los gerentes.
func (h *ManagerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un gerente por id.
func (h *ManagerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un gerente por id.
func (h *ManagerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
