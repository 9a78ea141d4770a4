package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Campus-api/internal/application/activation"
	"github.com/jhoicas/Campus-api/internal/application/auth"
	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/application/provisioning"
)

// InstitutionHandler registro y ciclo de vida de instituciones (sitio principal).
type InstitutionHandler struct {
	provision *provisioning.UseCase
	gate      *activation.UseCase
	auth      *auth.UseCase
}

// NewInstitutionHandler construye el handler.
func NewInstitutionHandler(provision *provisioning.UseCase, gate *activation.UseCase, authUC *auth.UseCase) *InstitutionHandler {
	return &InstitutionHandler{provision: provision, gate: gate, auth: authUC}
}

// Create godoc
// @Summary      Registrar institución
// @Description  Crea registro, dominio, esquema y administrador por defecto en una transacción.
// @Tags         institutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInstitutionRequest  true  "Datos de la institución"
// @Success      201   {object}  dto.ProvisionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/institutions [post]
func (h *InstitutionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInstitutionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	owner, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.provision.Provision(c.UserContext(), in, owner)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar instituciones
// @Description  superadmin ve todas; client, las propias.
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InstitutionListResponse
// @Router       /api/institutions [get]
func (h *InstitutionHandler) List(c *fiber.Ctx) error {
	actor, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.provision.List(c.UserContext(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Métricas del panel
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InstitutionStatsResponse
// @Router       /api/institutions/stats [get]
func (h *InstitutionHandler) Stats(c *fiber.Ctx) error {
	out, err := h.provision.Stats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Actividad mensual
// @Description  Instituciones creadas y registros públicos por mes, últimos 6 meses.
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InstitutionAnalyticsResponse
// @Router       /api/institutions/analytics [get]
func (h *InstitutionHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.provision.Analytics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Domains godoc
// @Summary      Dominios registrados
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.DomainResponse
// @Router       /api/institutions/domains [get]
func (h *InstitutionHandler) Domains(c *fiber.Ctx) error {
	out, err := h.provision.Domains(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Faults godoc
// @Summary      Aprovisionamientos incompletos sin resolver
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProvisioningFaultResponse
// @Router       /api/institutions/faults [get]
func (h *InstitutionHandler) Faults(c *fiber.Ctx) error {
	out, err := h.provision.Faults(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar institución
// @Description  Actualización parcial de nombre y datos de contacto. Solo dueño o superadmin.
// @Tags         institutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        schema  path  string                        true  "Esquema"
// @Param        body    body  dto.UpdateInstitutionRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.InstitutionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema} [put]
func (h *InstitutionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInstitutionRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	actor, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.provision.Update(c.UserContext(), c.Params("schema"), in, actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar institución
// @Description  Borra registro, dominios y esquema juntos.
// @Tags         institutions
// @Security     Bearer
// @Param        schema  path  string  true  "Esquema"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema} [delete]
func (h *InstitutionHandler) Delete(c *fiber.Ctx) error {
	actor, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	if err := h.provision.Delete(c.UserContext(), c.Params("schema"), actor); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Status godoc
// @Summary      Estado de activación
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Param        schema  path  string  true  "Esquema"
// @Success      200  {object}  dto.TenantStatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema}/status [get]
func (h *InstitutionHandler) Status(c *fiber.Ctx) error {
	actor, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	tenant, err := h.provision.Authorize(c.UserContext(), c.Params("schema"), actor)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.gate.Status(c.UserContext(), tenant.SchemaName)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Renew godoc
// @Summary      Renovar vigencia
// @Tags         institutions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        schema  path  string             true  "Esquema"
// @Param        body    body  dto.RenewRequest   false "meses (12 por defecto)"
// @Success      200  {object}  dto.TenantStatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema}/renew [post]
func (h *InstitutionHandler) Renew(c *fiber.Ctx) error {
	var in dto.RenewRequest
	if err := bind(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.gate.Renew(c.UserContext(), c.Params("schema"), in.Months)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Activar o desactivar manualmente
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Param        schema  path  string  true  "Esquema"
// @Success      200  {object}  dto.TenantStatusResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema}/toggle [post]
func (h *InstitutionHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.gate.Toggle(c.UserContext(), c.Params("schema"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Credentials godoc
// @Summary      Ficha de acceso del administrador por defecto
// @Tags         institutions
// @Security     Bearer
// @Produce      json
// @Produce      application/pdf
// @Param        schema  path   string  true   "Esquema"
// @Param        format  query  string  false  "pdf para descargar la ficha"
// @Success      200  {object}  dto.CredentialsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/institutions/{schema}/credentials [get]
func (h *InstitutionHandler) Credentials(c *fiber.Ctx) error {
	actor, err := h.auth.CurrentUser(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, err)
	}
	schema := c.Params("schema")
	if c.Query("format") == "pdf" {
		doc, err := h.provision.CredentialsPDF(c.UserContext(), schema, actor)
		if err != nil {
			return writeError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="credenciales-`+schema+`.pdf"`)
		return c.Send(doc)
	}
	out, err := h.provision.Credentials(c.UserContext(), schema, actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
