// Package access decide si una identidad autenticada puede operar sobre un recurso.
// No tiene efectos secundarios ni dependencias de HTTP o almacenamiento.
package access

import (
	"slices"

	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
)

// Identity identidad autenticada del llamador (id del cliente + roles).
type Identity struct {
	ID    int
	Roles []entity.Role
}

// HasRole informa si la identidad tiene el rol.
func (i Identity) HasRole(role entity.Role) bool {
	return slices.Contains(i.Roles, role)
}

// IsAdmin atajo para HasRole(RoleAdmin).
func (i Identity) IsAdmin() bool {
	return i.HasRole(entity.RoleAdmin)
}

// Decision resultado de la autorización.
type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "ALLOW"
	}
	return "DENY"
}

// Authorize ALLOW si la identidad es ADMIN o es CUSTOMER y dueña del recurso; DENY en otro caso.
func Authorize(identity Identity, ownerID int) Decision {
	if identity.IsAdmin() {
		return Allow
	}
	if identity.HasRole(entity.RoleCustomer) && identity.ID == ownerID {
		return Allow
	}
	return Deny
}

// RequireRole chequeo solo por rol (listados, reportes): ALLOW si tiene alguno de los roles.
func RequireRole(identity Identity, roles ...entity.Role) Decision {
	for _, r := range roles {
		if identity.HasRole(r) {
			return Allow
		}
	}
	return Deny
}
