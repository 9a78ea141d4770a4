package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Campus-api/internal/application/dto"
	"github.com/jhoicas/Campus-api/internal/domain"
)

// requestError cuerpo inválido o que no pasa validación.
type requestError struct {
	code    string
	message string
}

func (e *requestError) Error() string { return e.message }

type errorMapping struct {
	target  error
	status  int
	code    string
	message string // vacío = mensaje del error
}

// errorTable traduce la taxonomía de dominio a HTTP. El orden importa: la primera coincidencia gana.
var errorTable = []errorMapping{
	{domain.ErrUnknownTenant, fiber.StatusNotFound, "UNKNOWN_TENANT", "institución no encontrada"},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "credenciales inválidas"},
	{domain.ErrCrossSchemaToken, fiber.StatusUnauthorized, "CROSS_SCHEMA_TOKEN", "el token no pertenece a esta institución"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autorizado"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"},
	{domain.ErrTenantInactive, fiber.StatusForbidden, "TENANT_INACTIVE", "la institución no está activa"},
	{domain.ErrSchemaNameReserved, fiber.StatusBadRequest, "SCHEMA_NAME_RESERVED", ""},
	{domain.ErrInvalidSchemaName, fiber.StatusBadRequest, "INVALID_SCHEMA_NAME", ""},
	{domain.ErrInvalidDomain, fiber.StatusBadRequest, "INVALID_DOMAIN", ""},
	{domain.ErrInvalidPlan, fiber.StatusBadRequest, "INVALID_PLAN", ""},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION", "entrada inválida"},
	{domain.ErrSchemaNameTaken, fiber.StatusConflict, "SCHEMA_NAME_TAKEN", ""},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS", ""},
	{domain.ErrRegistrationNumberTaken, fiber.StatusConflict, "REGISTRATION_NUMBER_TAKEN", ""},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE", "recurso duplicado"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT", ""},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"},
	{domain.ErrPaymentProviderUnavailable, fiber.StatusServiceUnavailable, "PAYMENT_PROVIDER_UNAVAILABLE", "proveedor de pagos no disponible, intente más tarde"},
	{domain.ErrProvisioningPartialFailure, fiber.StatusInternalServerError, "PROVISIONING_FAILED", "no se pudo completar el registro de la institución"},
}

// ErrorStatus devuelve status, código y mensaje públicos para err.
func ErrorStatus(err error) (int, dto.ErrorResponse) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: reqErr.code, Message: reqErr.message}
	}
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = m.target.Error()
			}
			return m.status, dto.ErrorResponse{Code: m.code, Message: msg}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"}
}

// writeError responde err con el formato dto.ErrorResponse. Los 5xx inesperados se registran.
func writeError(c *fiber.Ctx, err error) error {
	status, body := ErrorStatus(err)
	if body.Code == "INTERNAL" {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no controlado")
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler manejador de errores de Fiber (rutas inexistentes, panics recuperados).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return writeError(c, err)
}
