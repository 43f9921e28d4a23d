package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercadolivro-api/internal/domain"
	"github.com/jhoicas/mercadolivro-api/internal/domain/access"
	"github.com/jhoicas/mercadolivro-api/internal/domain/entity"
	"github.com/jhoicas/mercadolivro-api/pkg/jwt"
)

// LocalIdentity key de Fiber Locals con la access.Identity del llamador.
const LocalIdentity = "identity"

// identityLoader carga la identidad vigente del cliente del token. Lo implementa *auth.AuthUseCase.
type identityLoader interface {
	LoadIdentity(ctx context.Context, customerID int) (access.Identity, error)
}

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del cliente en c.Locals.
// Token ausente, malformado o expirado -> ML-2003; cliente inexistente o inactivo -> ML-2002.
func AuthMiddleware(jwtSecret string, loader identityLoader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return writeError(c, domain.InvalidToken())
		}
		claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return writeError(c, domain.InvalidToken().Wrap(err))
		}
		identity, err := loader.LoadIdentity(c.UserContext(), claims.CustomerID)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalIdentity, identity)
		return c.Next()
	}
}

// RequireRole permite el paso solo si la identidad tiene alguno de los roles. Debe ir después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return writeError(c, domain.InvalidToken())
		}
		if access.RequireRole(identity, roles...) != access.Allow {
			return writeError(c, domain.Unauthorized())
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin autoriza contra el cliente del parámetro de ruta antes de cualquier búsqueda,
// así un acceso denegado no revela si el recurso existe.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return writeError(c, domain.InvalidToken())
		}
		ownerID, err := paramID(c, param)
		if err != nil {
			return writeError(c, err)
		}
		if access.Authorize(identity, ownerID) != access.Allow {
			return writeError(c, domain.Unauthorized())
		}
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) (access.Identity, bool) {
	identity, ok := c.Locals(LocalIdentity).(access.Identity)
	return identity, ok
}

// authorizeOwner decide sobre un recurso ya cargado (libros, compras).
func authorizeOwner(c *fiber.Ctx, ownerID int) error {
	identity, ok := GetIdentity(c)
	if !ok {
		return domain.InvalidToken()
	}
	if access.Authorize(identity, ownerID) != access.Allow {
		return domain.Unauthorized()
	}
	return nil
}
