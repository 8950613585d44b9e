package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperr "carehome/internal/errors"
)

// Response is the envelope returned by every data endpoint. Data is null when absent.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// MessageResponse is the envelope of endpoints that only report an outcome.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// All outcomes are reported with 200; Success carries the result.

func respond(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func respondError(c echo.Context, data interface{}, err error, fallback string) error {
	return c.JSON(http.StatusOK, Response{Success: false, Data: data, Message: apperr.Message(err, fallback)})
}

func respondFailure(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Response{Success: false, Message: message})
}

func respondMessage(c echo.Context, success bool, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Success: success, Message: message})
}

func respondMessageError(c echo.Context, err error, fallback string) error {
	return respondMessage(c, false, apperr.Message(err, fallback))
}

func methodNotAllowed(c echo.Context) error {
	return respondMessage(c, false, "Método HTTP "+c.Request().Method+" no permitido")
}

// queryID parses an id query parameter; malformed values read as 0.
func queryID(c echo.Context, name string) uint {
	id, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// idRequest carries an id in a JSON body.
type idRequest struct {
	ID *uint `json:"id"`
}
