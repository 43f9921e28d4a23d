package dto

import (
	"time"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// PostCustomerRequest body para registrar un cliente.
type PostCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ToEntity convierte el request en un cliente sin persistir.
func (r PostCustomerRequest) ToEntity() entity.Customer {
	return entity.Customer{Name: r.Name, Email: r.Email, Password: r.Password}
}

// PutCustomerRequest body para editar un cliente (solo nombre y email).
type PutCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ToEntity convierte el request en el cliente id con los datos nuevos.
func (r PutCustomerRequest) ToEntity(id int) entity.Customer {
	return entity.Customer{ID: id, Name: r.Name, Email: r.Email}
}

// CustomerResponse respuesta pública de un cliente. Nunca incluye la contraseña.
type CustomerResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse mapea la entidad a la respuesta.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    string(c.Status),
		Roles:     c.RoleNames(),
		CreatedAt: c.CreatedAt,
	}
}
