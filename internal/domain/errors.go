package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound                = errors.New("recurso no encontrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrDuplicate               = errors.New("recurso duplicado")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrForbidden               = errors.New("acceso denegado")
	ErrConflict                = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists      = errors.New("el email ya está registrado")
	ErrRegistrationNumberTaken = errors.New("el número de registro ya existe en este esquema")
)

// Errores del núcleo de tenencia y autenticación.
var (
	ErrUnknownTenant              = errors.New("tenant desconocido")
	ErrSchemaNameReserved         = errors.New("el nombre de esquema está reservado")
	ErrSchemaNameTaken            = errors.New("el nombre de esquema ya está en uso")
	ErrInvalidSchemaName          = errors.New("nombre de esquema inválido")
	ErrInvalidDomain              = errors.New("dominio inválido")
	ErrInvalidPlan                = errors.New("plan inválido")
	ErrInvalidCredentials         = errors.New("credenciales inválidas")
	ErrCrossSchemaToken           = errors.New("el token pertenece a otro esquema")
	ErrTenantInactive             = errors.New("la institución no está activa")
	ErrPaymentProviderUnavailable = errors.New("proveedor de pagos no disponible")
	ErrProvisioningPartialFailure = errors.New("aprovisionamiento incompleto")
)
