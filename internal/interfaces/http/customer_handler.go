package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	svc *usecase.CustomerService
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(svc *usecase.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List godoc
// @Summary      Listar clientes
// @Description  Página de clientes; con name filtra por nombre sin distinguir mayúsculas. Solo ADMIN.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        name  query  string  false  "Subcadena del nombre"
// @Param        page  query  int     false  "Página (desde 0)"
// @Param        size  query  int     false  "Tamaño de página (default 10, max 100)"
// @Success      200  {object}  dto.PageResponse[dto.CustomerResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, invalidQuery(err))
	}
	if err := validateStruct(q); err != nil {
		return writeError(c, err)
	}
	var name *string
	if v := c.Query("name"); v != "" {
		name = &v
	}
	page, err := h.svc.List(c.UserContext(), name, q.ToPageRequest())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPageResponse(page, dto.ToCustomerResponse))
}

// Create godoc
// @Summary      Registrar cliente
// @Description  Alta pública. El cliente queda ACTIVE con rol CUSTOMER.
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostCustomerRequest  true  "name, email, password"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.PostCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	customer, err := h.svc.Create(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCustomerResponse(customer))
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	customer, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCustomerResponse(customer))
}

// Update godoc
// @Summary      Editar cliente
// @Description  Cambia nombre y email. No modifica el estado.
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Param        id    path  int                     true  "ID del cliente"
// @Param        body  body  dto.PutCustomerRequest  true  "name, email"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PutCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.svc.Update(c.UserContext(), in.ToEntity(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Dar de baja cliente
// @Description  Baja lógica: borra sus libros y lo deja INACTIVE.
// @Tags         customers
// @Security     Bearer
// @Param        id   path  int  true  "ID del cliente"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.Remove(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
