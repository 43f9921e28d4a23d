package entity

import (
	"slices"
	"time"
)

// CustomerStatus estado del ciclo de vida del cliente. INACTIVE es terminal (borrado lógico).
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "ACTIVE"
	CustomerInactive CustomerStatus = "INACTIVE"
)

// Role rol del cliente para control de acceso.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole valida un rol recibido como texto (token, base de datos).
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Customer representa un cliente de la librería.
type Customer struct {
	ID        int
	Name      string
	Email     string
	Password  string // hash bcrypt, nunca texto plano después de Create
	Status    CustomerStatus
	Roles     []Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasRole informa si el cliente tiene el rol indicado.
func (c *Customer) HasRole(role Role) bool {
	return slices.Contains(c.Roles, role)
}

// IsActive true si el cliente no fue dado de baja.
func (c *Customer) IsActive() bool {
	return c.Status == CustomerActive
}

// RoleNames roles como []string para serializar.
func (c *Customer) RoleNames() []string {
	out := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		out = append(out, string(r))
	}
	return out
}
