package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/application/auth"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
	"github.com/jhoicas/Campus-api/internal/application/settings"
	"github.com/jhoicas/Campus-api/internal/application/tenancy"
	"github.com/jhoicas/Campus-api/internal/domain/entity"
)

// WebhookAPIKeyHeader header con la clave compartida del proveedor de pagos.
const WebhookAPIKeyHeader = "x-api-key"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Resolver      *tenancy.Resolver
	AuthUC        *auth.UseCase
	ProvisionUC   *provisioning.UseCase
	ActivationUC  *activation.UseCase
	SettingsUC    *settings.UseCase
	WebhookAPIKey string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	paymentHandler := NewPaymentHandler(deps.ActivationUC, deps.AuthUC)

	// Webhook del proveedor: se registra antes del grupo para no pasar por la resolución de host.
	app.Post("/api/payments/webhook", APIKeyGuard(WebhookAPIKeyHeader, deps.WebhookAPIKey), paymentHandler.Webhook)

	api := app.Group("/api", TenantMiddleware(deps.Resolver), MaintenanceGuard(deps.SettingsUC))

	authed := AuthMiddleware(deps.AuthUC)
	active := RequireActiveTenant(deps.ActivationUC)
	superadmin := RequireRole(entity.RoleSuperAdmin)
	owners := RequireRole(entity.RoleClient, entity.RoleSuperAdmin)

	// Auth (sitio principal e instituciones)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", PublicOnly(), authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Get("/me", authed, active, authHandler.Me)
	authGroup.Post("/change-password", authed, active, authHandler.ChangePassword)

	// Perfil de la institución del host
	tenantHandler := NewTenantHandler(deps.ProvisionUC)
	api.Get("/tenant/info", TenantOnly(), tenantHandler.Info)

	// Instituciones (solo sitio principal, protegido)
	institutions := api.Group("/institutions", PublicOnly(), authed)
	institutionHandler := NewInstitutionHandler(deps.ProvisionUC, deps.ActivationUC, deps.AuthUC)
	institutions.Post("/", owners, institutionHandler.Create)
	institutions.Get("/", owners, institutionHandler.List)
	institutions.Get("/stats", superadmin, institutionHandler.Stats)
	institutions.Get("/analytics", superadmin, institutionHandler.Analytics)
	institutions.Get("/domains", superadmin, institutionHandler.Domains)
	institutions.Get("/faults", superadmin, institutionHandler.Faults)
	institutions.Put("/:schema", owners, institutionHandler.Update)
	institutions.Delete("/:schema", owners, institutionHandler.Delete)
	institutions.Get("/:schema/status", owners, institutionHandler.Status)
	institutions.Get("/:schema/credentials", owners, institutionHandler.Credentials)
	institutions.Post("/:schema/renew", superadmin, institutionHandler.Renew)
	institutions.Post("/:schema/toggle", superadmin, institutionHandler.Toggle)
	institutions.Post("/:schema/payments", owners, paymentHandler.Initiate)

	// Ajustes del sistema (superadmin)
	settingsGroup := api.Group("/settings", PublicOnly(), authed, superadmin)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Patch("/", settingsHandler.Update)
}
