package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carehome/internal/service"
)

// AuthHandler handles login, registration and account existence checks.
type AuthHandler struct {
	accounts service.AccountService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(accounts service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// LoginRequest is the login form.
type LoginRequest struct {
	Username string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginData is returned on a successful login.
type LoginData struct {
	UserID   uint   `json:"usuario_id"`
	Username string `json:"usuario"`
	Email    string `json:"email"`
}

// RegisterRequest is the short sign-up form.
type RegisterRequest struct {
	Username        string `json:"usuario" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

// ExistsResponse reports whether a username or email is taken.
type ExistsResponse struct {
	Success bool `json:"success"`
	Exists  bool `json:"exists"`
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=LoginData}
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return respondFailure(c, "Usuario y contraseña son requeridos")
	}

	identity, err := h.accounts.VerifyCredentials(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, nil, err, "Error en el login")
	}
	return respond(c, LoginData{
		UserID:   identity.ID,
		Username: identity.Username,
		Email:    identity.Email,
	}, "Login exitoso")
}

// Register godoc
// @Summary Short sign-up form
// @Description Validates the form; accounts are only created through employee registration.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Sign-up data"
// @Success 200 {object} MessageResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if err := c.Validate(&req); err != nil {
		return respondMessage(c, false, "Todos los campos son requeridos")
	}
	if req.Password != req.PasswordConfirm {
		return respondMessage(c, false, "Las contraseñas no coinciden")
	}

	if err := h.accounts.RegisterSimple(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return respondMessageError(c, err, "Error en el registro")
	}
	return respondMessage(c, true, "Usuario registrado exitosamente")
}

// RegisterEmployee godoc
// @Summary Register a staff member and their login account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.EmployeeRegistration true "Employee data"
// @Success 200 {object} MessageResponse
// @Router /register_employees [post]
func (h *AuthHandler) RegisterEmployee(c echo.Context) error {
	var req service.EmployeeRegistration
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if _, err := h.accounts.RegisterEmployee(c.Request().Context(), req); err != nil {
		return respondMessageError(c, err, "Error en el registro del empleado")
	}
	return respondMessage(c, true, "Empleado registrado exitosamente")
}

// Exists godoc
// @Summary Check whether a username or email is already registered
// @Tags auth
// @Produce json
// @Param usuario query string false "Username"
// @Param email query string false "Email"
// @Success 200 {object} ExistsResponse
// @Router /users/exists [get]
func (h *AuthHandler) Exists(c echo.Context) error {
	exists, err := h.accounts.Exists(c.Request().Context(), c.QueryParam("usuario"), c.QueryParam("email"))
	if err != nil {
		return respondMessageError(c, err, "Error al verificar usuario")
	}
	return c.JSON(http.StatusOK, ExistsResponse{Success: true, Exists: exists})
}
