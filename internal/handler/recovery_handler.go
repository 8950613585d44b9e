package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carehome/internal/service"
)

// RecoveryHandler handles the password recovery flow.
type RecoveryHandler struct {
	svc service.RecoveryService
}

// NewRecoveryHandler creates a new recovery handler.
func NewRecoveryHandler(svc service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{svc: svc}
}

// ForgotPasswordRequest asks for a recovery token.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// VerifyTokenRequest carries a recovery token.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// FormatCheck is one field's result in ValidateForm.
type FormatCheck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// FormatChecks groups the checks requested by ValidateForm.
type FormatChecks struct {
	Email    *FormatCheck `json:"email,omitempty"`
	Password *FormatCheck `json:"password,omitempty"`
}

// ForgotPassword godoc
// @Summary Request a password recovery token by email
// @Description The response is the same whether or not the email is registered.
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} Response
// @Router /forgot_password [post]
func (h *RecoveryHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, "Solicitud inválida")
	}
	if err := h.svc.RequestRecovery(c.Request().Context(), req.Email); err != nil {
		return respondError(c, nil, err, "Error en la recuperación de contraseña")
	}
	return respond(c, nil, "Si el email existe, recibirá instrucciones de recuperación")
}

// VerifyToken godoc
// @Summary Check a recovery token
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body VerifyTokenRequest true "Token"
// @Success 200 {object} Response{data=service.TokenInfo}
// @Router /verify_token [post]
func (h *RecoveryHandler) VerifyToken(c echo.Context) error {
	var req VerifyTokenRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, "Solicitud inválida")
	}
	info, err := h.svc.VerifyToken(c.Request().Context(), req.Token)
	if err != nil {
		return respondError(c, nil, err, "Error al verificar token")
	}
	return respond(c, info, "Token válido")
}

// ResetPassword godoc
// @Summary Set a new password with a recovery token
// @Tags recovery
// @Accept json
// @Produce json
// @Param request body service.ResetPasswordInput true "Token and new password"
// @Success 200 {object} MessageResponse
// @Router /reset_password [post]
func (h *RecoveryHandler) ResetPassword(c echo.Context) error {
	var req service.ResetPasswordInput
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if err := h.svc.ResetPassword(c.Request().Context(), req); err != nil {
		return respondMessageError(c, err, "Error al actualizar contraseña")
	}
	return respondMessage(c, true, "Contraseña actualizada exitosamente")
}

// ValidateForm godoc
// @Summary Check email and password formats of the recovery form
// @Tags recovery
// @Produce json
// @Param email query string false "Email"
// @Param password query string false "Password"
// @Success 200 {object} Response{data=FormatChecks}
// @Router /forgot_password/validate [get]
func (h *RecoveryHandler) ValidateForm(c echo.Context) error {
	q := c.QueryParams()
	if !q.Has("email") && !q.Has("password") {
		return respondFailure(c, "Email o contraseña requeridos")
	}

	var checks FormatChecks
	ok := true
	if q.Has("email") {
		valid := h.svc.ValidateEmailFormat(q.Get("email"))
		msg := "Email válido"
		if !valid {
			msg = "Formato de email inválido"
		}
		checks.Email = &FormatCheck{Success: valid, Message: msg}
		ok = ok && valid
	}
	if q.Has("password") {
		valid, msg := h.svc.ValidatePasswordFormat(q.Get("password"))
		checks.Password = &FormatCheck{Success: valid, Message: msg}
		ok = ok && valid
	}

	msg := "Formato válido"
	if !ok {
		msg = "Formato inválido"
	}
	return c.JSON(http.StatusOK, Response{Success: ok, Data: checks, Message: msg})
}
