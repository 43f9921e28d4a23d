package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
	"github.com/jhoicas/mercadolivro-api/internal/application/usecase"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/internal/domain/repository"
)

// BookHandler maneja las peticiones HTTP de libros.
type BookHandler struct {
	svc *usecase.BookService
}

// NewBookHandler construye el handler.
func NewBookHandler(svc *usecase.BookService) *BookHandler {
	return &BookHandler{svc: svc}
}

// Create godoc
// @Summary      Publicar libro
// @Description  El dueño (customer_id) debe ser el llamador, salvo ADMIN.
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostBookRequest  true  "name, author, price, customer_id"
// @Success      201   {object}  dto.BookResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /books [post]
func (h *BookHandler) Create(c *fiber.Ctx) error {
	var in dto.PostBookRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := authorizeOwner(c, in.CustomerID); err != nil {
		return writeError(c, err)
	}
	book, err := h.svc.Create(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToBookResponse(book))
}

// List godoc
// @Summary      Listar libros
// @Tags         books
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"
// @Param        size  query  int  false  "Tamaño de página (default 10, max 100)"
// @Success      200  {object}  dto.PageResponse[dto.BookResponse]
// @Router       /books [get]
func (h *BookHandler) List(c *fiber.Ctx) error {
	return h.page(c, h.svc.List)
}

// ListActive godoc
// @Summary      Listar libros a la venta
// @Tags         books
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"
// @Param        size  query  int  false  "Tamaño de página (default 10, max 100)"
// @Success      200  {object}  dto.PageResponse[dto.BookResponse]
// @Router       /books/active [get]
func (h *BookHandler) ListActive(c *fiber.Ctx) error {
	return h.page(c, h.svc.ListActive)
}

func (h *BookHandler) page(c *fiber.Ctx, find func(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Book], error)) error {
	var q dto.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return writeError(c, invalidQuery(err))
	}
	if err := validateStruct(q); err != nil {
		return writeError(c, err)
	}
	page, err := find(c.UserContext(), q.ToPageRequest())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewPageResponse(page, dto.ToBookResponse))
}

// GetByID godoc
// @Summary      Obtener libro
// @Tags         books
// @Produce      json
// @Param        id   path  int  true  "ID del libro"
// @Success      200  {object}  dto.BookResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /books/{id} [get]
func (h *BookHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	book, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToBookResponse(book))
}

// Update godoc
// @Summary      Editar libro
// @Description  Solo libros ACTIVE; dueño o ADMIN.
// @Tags         books
// @Security     Bearer
// @Accept       json
// @Param        id    path  int                 true  "ID del libro"
// @Param        body  body  dto.PutBookRequest  true  "name, author, price"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PutBookRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	book, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authorizeOwner(c, book.CustomerID); err != nil {
		return writeError(c, err)
	}
	if err := h.svc.Update(c.UserContext(), in.ToEntity(id)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Borrar libro
// @Description  Marca el libro como DELETED; dueño o ADMIN.
// @Tags         books
// @Security     Bearer
// @Param        id   path  int  true  "ID del libro"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	book, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if err := authorizeOwner(c, book.CustomerID); err != nil {
		return writeError(c, err)
	}
	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
