package http

import (
	"context"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// LocalSchema clave en c.Locals del esquema resuelto.
const LocalSchema = "schema"

// schemaResolver lo implementa *tenancy.Resolver.
type schemaResolver interface {
	Resolve(ctx context.Context, host string) (string, error)
}

// activityChecker lo implementa *activation.UseCase.
type activityChecker interface {
	IsActive(ctx context.Context, schemaName string) (bool, error)
}

// maintenanceChecker lo implementa *settings.UseCase.
type maintenanceChecker interface {
	Maintenance(ctx context.Context) (bool, error)
}

// TenantMiddleware resuelve el host de la petición a un esquema y lo deja en c.Locals.
// Un host desconocido responde 404 sin tocar ningún esquema.
func TenantMiddleware(resolver schemaResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		schema, err := resolver.Resolve(c.UserContext(), c.Hostname())
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalSchema, schema)
		return c.Next()
	}
}

// GetSchema devuelve el esquema resuelto (después de TenantMiddleware).
func GetSchema(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSchema).(string)
	return s
}

func isTenantSchema(c *fiber.Ctx) bool {
	s := GetSchema(c)
	return s != "" && s != entity.PublicSchema
}

// PublicOnly limita la ruta al host público.
func PublicOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isTenantSchema(c) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta disponible solo en el sitio principal"})
		}
		return c.Next()
	}
}

// TenantOnly limita la ruta al host de una institución.
func TenantOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isTenantSchema(c) {
			return writeError(c, domain.ErrUnknownTenant)
		}
		return c.Next()
	}
}

// RequireActiveTenant rechaza peticiones a una institución no activa. En el host público no aplica.
//
// Comportamiento:
//   - 403 Forbidden → institución pendiente de pago o vencida.
//   - 503 Service Unavailable → fallo de infraestructura al consultar el estado.
func RequireActiveTenant(checker activityChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isTenantSchema(c) {
			return c.Next()
		}
		active, err := checker.IsActive(c.UserContext(), GetSchema(c))
		if err != nil {
			log.Error().Err(err).Str("schema", GetSchema(c)).Msg("no se pudo verificar la activación")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACTIVATION_CHECK_FAILED",
				Message: "no se pudo verificar la institución, intente más tarde",
			})
		}
		if !active {
			return writeError(c, domain.ErrTenantInactive)
		}
		return c.Next()
	}
}

// MaintenanceGuard responde 503 en los hosts de institución mientras el modo mantenimiento esté activo.
func MaintenanceGuard(checker maintenanceChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isTenantSchema(c) {
			return c.Next()
		}
		on, err := checker.Maintenance(c.UserContext())
		if err != nil {
			log.Error().Err(err).Msg("no se pudo leer el modo mantenimiento")
			return c.Next()
		}
		if on {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MAINTENANCE", Message: "plataforma en mantenimiento"})
		}
		return c.Next()
	}
}

// APIKeyGuard exige la clave compartida en el header indicado. Sin clave configurada rechaza todo.
func APIKeyGuard(header, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get(header)
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_API_KEY", Message: "clave de API inválida"})
		}
		return c.Next()
	}
}
