package handler

import (
	"github.com/labstack/echo/v4"

	"carehome/internal/model"
	"carehome/internal/service"
)

// ResidentHandler handles resident endpoints.
type ResidentHandler struct {
	svc service.ResidentService
}

// NewResidentHandler creates a new resident handler.
func NewResidentHandler(svc service.ResidentService) *ResidentHandler {
	return &ResidentHandler{svc: svc}
}

// UpdateResidentRequest is the PUT body: the id plus the fields to change.
type UpdateResidentRequest struct {
	ID *uint `json:"id"`
	model.ResidentPatch
}

// Dispatch routes a request on /residents by verb and query string.
func (h *ResidentHandler) Dispatch(c echo.Context) error {
	switch c.Request().Method {
	case echo.GET:
		q := c.QueryParams()
		switch {
		case q.Has("id"):
			return h.Get(c)
		case q.Has("search"):
			return h.Search(c)
		case q.Has("status"):
			return h.ListByStatus(c)
		case q.Has("count"):
			return h.Count(c)
		default:
			return h.List(c)
		}
	case echo.POST:
		return h.Create(c)
	case echo.PUT:
		return h.Update(c)
	case echo.DELETE:
		return h.Delete(c)
	default:
		return methodNotAllowed(c)
	}
}

// List godoc
// @Summary List active residents
// @Tags residents
// @Produce json
// @Success 200 {object} Response{data=[]model.Resident}
// @Router /residents [get]
func (h *ResidentHandler) List(c echo.Context) error {
	residents, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, []model.Resident{}, err, "Error al listar residentes")
	}
	return respond(c, residents, "Residentes obtenidos exitosamente")
}

// Get godoc
// @Summary Get a resident by id
// @Tags residents
// @Produce json
// @Param id query int true "Resident ID"
// @Success 200 {object} Response{data=model.Resident}
// @Router /residents [get]
func (h *ResidentHandler) Get(c echo.Context) error {
	resident, err := h.svc.Get(c.Request().Context(), queryID(c, "id"))
	if err != nil {
		return respondError(c, nil, err, "Error al obtener residente")
	}
	return respond(c, resident, "Residente obtenido exitosamente")
}

// Search godoc
// @Summary Search active residents by name, surname or document
// @Tags residents
// @Produce json
// @Param search query string true "Search term"
// @Success 200 {object} Response{data=[]model.Resident}
// @Router /residents [get]
func (h *ResidentHandler) Search(c echo.Context) error {
	residents, err := h.svc.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respondError(c, []model.Resident{}, err, "Error al buscar residentes")
	}
	return respond(c, residents, "Búsqueda realizada exitosamente")
}

// ListByStatus godoc
// @Summary List active residents with a health status
// @Tags residents
// @Produce json
// @Param status query string true "Health status"
// @Success 200 {object} Response{data=[]model.Resident}
// @Router /residents [get]
func (h *ResidentHandler) ListByStatus(c echo.Context) error {
	residents, err := h.svc.ListByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return respondError(c, []model.Resident{}, err, "Error al obtener residentes por estado")
	}
	return respond(c, residents, "Residentes por estado obtenidos exitosamente")
}

// Count godoc
// @Summary Count active residents
// @Tags residents
// @Produce json
// @Param count query string true "Any value"
// @Success 200 {object} Response{data=int}
// @Router /residents [get]
func (h *ResidentHandler) Count(c echo.Context) error {
	count, err := h.svc.CountActive(c.Request().Context())
	if err != nil {
		return respondError(c, 0, err, "Error al contar residentes")
	}
	return respond(c, count, "Conteo realizado exitosamente")
}

// Create godoc
// @Summary Register a resident
// @Tags residents
// @Accept json
// @Produce json
// @Param request body service.CreateResidentInput true "Resident data"
// @Success 200 {object} MessageResponse
// @Router /residents [post]
func (h *ResidentHandler) Create(c echo.Context) error {
	var req service.CreateResidentInput
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if _, err := h.svc.Create(c.Request().Context(), req); err != nil {
		return respondMessageError(c, err, "Error al añadir residente")
	}
	return respondMessage(c, true, "Residente creado exitosamente")
}

// Update godoc
// @Summary Update allowed fields of a resident
// @Tags residents
// @Accept json
// @Produce json
// @Param request body UpdateResidentRequest true "Resident id and fields to change"
// @Success 200 {object} MessageResponse
// @Router /residents [put]
func (h *ResidentHandler) Update(c echo.Context) error {
	var req UpdateResidentRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if req.ID == nil {
		return respondMessage(c, false, "ID de residente requerido para actualizar")
	}
	if err := h.svc.Update(c.Request().Context(), *req.ID, req.ResidentPatch); err != nil {
		return respondMessageError(c, err, "Error al actualizar residente")
	}
	return respondMessage(c, true, "Residente actualizado exitosamente")
}

// Delete godoc
// @Summary Deactivate a resident
// @Tags residents
// @Accept json
// @Produce json
// @Param id query int false "Resident ID (or in the body)"
// @Success 200 {object} MessageResponse
// @Router /residents [delete]
func (h *ResidentHandler) Delete(c echo.Context) error {
	id, ok := deleteID(c)
	if !ok {
		return respondMessage(c, false, "ID de residente requerido para eliminar")
	}
	changed, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return respondMessageError(c, err, "Error al eliminar residente")
	}
	if !changed {
		return respondMessage(c, false, "No se pudo eliminar el residente")
	}
	return respondMessage(c, true, "Residente eliminado exitosamente")
}

// deleteID reads the id from the JSON body, falling back to the query string.
func deleteID(c echo.Context) (uint, bool) {
	var req idRequest
	if err := c.Bind(&req); err == nil && req.ID != nil {
		return *req.ID, true
	}
	if c.QueryParams().Has("id") {
		return queryID(c, "id"), true
	}
	return 0, false
}
