package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"carehome/internal/handler"
)

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Residents   *handler.ResidentHandler
	Medications *handler.MedicationHandler
	Auth        *handler.AuthHandler
	Recovery    *handler.RecoveryHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, h Handlers) {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.Any("/residents", h.Residents.Dispatch)
	api.Any("/medicaments", h.Medications.Dispatch)

	api.POST("/login", h.Auth.Login)
	api.POST("/register", h.Auth.Register)
	api.POST("/register_employees", h.Auth.RegisterEmployee)
	api.GET("/users/exists", h.Auth.Exists)

	api.POST("/forgot_password", h.Recovery.ForgotPassword)
	api.GET("/forgot_password/validate", h.Recovery.ValidateForm)
	api.POST("/verify_token", h.Recovery.VerifyToken)
	api.POST("/reset_password", h.Recovery.ResetPassword)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
