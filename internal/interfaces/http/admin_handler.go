package http

import "github.com/gofiber/fiber/v2"

// AdminHandler rutas de administración.
type AdminHandler struct{}

// NewAdminHandler construye el handler.
func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// Report godoc
// @Summary      Reporte de administración
// @Tags         admin
// @Security     Bearer
// @Produce      plain
// @Success      200  {string}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin/report [get]
func (h *AdminHandler) Report(c *fiber.Ctx) error {
	return c.SendString("This is a report")
}
