package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"loandesk/internal/adapters/persistence/repositories"
	"loandesk/internal/config"
	"loandesk/internal/core/domain"
	"loandesk/internal/pkg/jwt"
	"loandesk/internal/pkg/response"
)

const principalKey = "principal"

// Authenticate resolves the request principal from a Bearer token. It runs
// once per request, before any role check, and never fails the request
// itself: a missing, malformed, expired, or otherwise invalid token leaves
// the request anonymous and the route policy decides the consequence.
//
// On a valid token the subject is re-resolved against the user store, so
// the effective role is the store's current one, not the token's claim.
// A role change or deactivation therefore bites on the very next request.
func Authenticate(userRepo repositories.UserRepository, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Next()
		}

		claims, err := jwt.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), cfg.JWT.Secret)
		if err != nil {
			// Invalid or expired token: proceed as anonymous
			return c.Next()
		}

		user, err := userRepo.GetByUsername(c.Context(), claims.Subject)
		if err != nil || !user.IsActive {
			return c.Next()
		}

		c.Locals(principalKey, &domain.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.DomainRole(),
		})

		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal for the request, if any
func PrincipalFrom(c *fiber.Ctx) (*domain.Principal, bool) {
	principal, ok := c.Locals(principalKey).(*domain.Principal)
	return principal, ok
}

// RequireAuthenticated rejects anonymous requests
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFrom(c); !ok {
			return response.Unauthorized(c, "Access denied")
		}
		return c.Next()
	}
}

// RequireRoles rejects requests whose principal lacks all of the given roles
func RequireRoles(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return response.Unauthorized(c, "Access denied")
		}
		if !principal.HasRole(roles...) {
			return response.Forbidden(c, "You don't have permission to access this resource")
		}
		return c.Next()
	}
}

// AdminOnly allows only the ADMIN role
func AdminOnly() fiber.Handler {
	return RequireRoles(domain.RoleAdmin)
}

// AnalystOrAdmin allows ANALYST or ADMIN roles
func AnalystOrAdmin() fiber.Handler {
	return RequireRoles(domain.RoleAnalyst, domain.RoleAdmin)
}
