package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Session ───────────────────────────────────────────────────────
	ErrSessionRequired ErrCode = "SESSION_REQUIRED"
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"
	ErrSessionClosed   ErrCode = "SESSION_CLOSED"

	// ─── Flow ──────────────────────────────────────────────────────────
	ErrConsentRequired ErrCode = "CONSENT_REQUIRED"
	ErrAnswersRequired ErrCode = "ANSWERS_REQUIRED"
	ErrStepOrder       ErrCode = "STEP_OUT_OF_ORDER"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Panel ─────────────────────────────────────────────────────────
	ErrPanelAccessDenied ErrCode = "PANEL_ACCESS_DENIED"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Infrastructure ────────────────────────────────────────────────
	ErrStoreUnavailable ErrCode = "STORAGE_UNAVAILABLE"
	ErrInternal         ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Session ───────────────────────────────────────────────────────
	case ErrSessionRequired:
		return "Se requiere una sesión de evaluación activa."
	case ErrSessionNotFound:
		return "La sesión de evaluación no existe o ha expirado."
	case ErrSessionClosed:
		return "Esta evaluación ya fue completada. Inicia una nueva para volver a responder."

	// ─── Flow ──────────────────────────────────────────────────────────
	case ErrConsentRequired:
		return "Debes aceptar el consentimiento."
	case ErrAnswersRequired:
		return "Debes responder el cuestionario antes de continuar."
	case ErrStepOrder:
		return "Completa los pasos anteriores antes de acceder a esta etapa."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Los datos enviados no son válidos. Revisa el formulario."
	case ErrInvalidPayload:
		return "El formato de la solicitud no es válido."

	// ─── Panel ─────────────────────────────────────────────────────────
	case ErrPanelAccessDenied:
		return "Acceso al panel denegado."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Demasiadas solicitudes. Intenta nuevamente en unos minutos."

	// ─── Infrastructure ────────────────────────────────────────────────
	case ErrStoreUnavailable:
		return "No fue posible guardar tus resultados. Intenta nuevamente."
	case ErrInternal:
		return "Ocurrió un error interno del servidor."
	default:
		return "Ocurrió un error inesperado."
	}
}
