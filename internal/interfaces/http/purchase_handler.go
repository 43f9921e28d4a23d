package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/application/billing"
	"github.com/jhoicas/mercadolivro-api/internal/application/dto"
)

// PurchaseHandler maneja las compras de libros.
type PurchaseHandler struct {
	uc *billing.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *billing.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Create godoc
// @Summary      Comprar libros
// @Description  Marca los libros como SOLD y registra la compra en una transacción. Cliente propio o ADMIN.
// @Tags         purchases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PostPurchaseRequest  true  "customer_id, book_ids"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /purchases [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.PostPurchaseRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := authorizeOwner(c, in.CustomerID); err != nil {
		return writeError(c, err)
	}
	purchase, err := h.uc.Purchase(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPurchaseResponse(purchase))
}

// ListByCustomer godoc
// @Summary      Compras de un cliente
// @Tags         purchases
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customers/{id}/purchases [get]
func (h *PurchaseHandler) ListByCustomer(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	list, err := h.uc.ListByCustomer(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToPurchaseResponse(p))
	}
	return c.JSON(out)
}
