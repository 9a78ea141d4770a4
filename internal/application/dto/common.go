package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout formato de las fechas sin hora (paid_until).
const DateLayout = "2006-01-02"

// MonthLayout formato de los meses en las métricas mensuales.
const MonthLayout = "2006-01"
