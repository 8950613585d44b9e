package handler

import (
	"github.com/labstack/echo/v4"

	"carehome/internal/model"
	"carehome/internal/service"
)

// MedicationHandler handles medication endpoints.
type MedicationHandler struct {
	svc service.MedicationService
}

// NewMedicationHandler creates a new medication handler.
func NewMedicationHandler(svc service.MedicationService) *MedicationHandler {
	return &MedicationHandler{svc: svc}
}

// UpdateMedicationRequest is the PUT body: the id plus the fields to change.
type UpdateMedicationRequest struct {
	ID *uint `json:"id"`
	model.MedicationPatch
}

// Dispatch routes a request on /medicaments by verb and query string.
func (h *MedicationHandler) Dispatch(c echo.Context) error {
	switch c.Request().Method {
	case echo.GET:
		q := c.QueryParams()
		switch {
		case q.Has("id"):
			return h.Get(c)
		case q.Has("resident_id"):
			return h.ListByResident(c)
		case q.Has("stock"):
			return h.CheckStock(c)
		case q.Has("low_stock"):
			return h.ListLowStock(c)
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
// @Summary List active medications with their resident's name
// @Tags medicaments
// @Produce json
// @Success 200 {object} Response{data=[]model.MedicationWithResident}
// @Router /medicaments [get]
func (h *MedicationHandler) List(c echo.Context) error {
	meds, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, []model.MedicationWithResident{}, err, "Error al listar medicamentos")
	}
	return respond(c, meds, "Medicamentos obtenidos exitosamente")
}

// Get godoc
// @Summary Get a medication by id
// @Tags medicaments
// @Produce json
// @Param id query int true "Medication ID"
// @Success 200 {object} Response{data=model.MedicationWithResident}
// @Router /medicaments [get]
func (h *MedicationHandler) Get(c echo.Context) error {
	med, err := h.svc.Get(c.Request().Context(), queryID(c, "id"))
	if err != nil {
		return respondError(c, nil, err, "Error al obtener medicamento")
	}
	return respond(c, med, "Medicamento obtenido exitosamente")
}

// ListByResident godoc
// @Summary List active medications of a resident
// @Tags medicaments
// @Produce json
// @Param resident_id query int true "Resident ID"
// @Success 200 {object} Response{data=[]model.Medication}
// @Router /medicaments [get]
func (h *MedicationHandler) ListByResident(c echo.Context) error {
	meds, err := h.svc.ListByResident(c.Request().Context(), queryID(c, "resident_id"))
	if err != nil {
		return respondError(c, []model.Medication{}, err, "Error al obtener medicamentos del residente")
	}
	return respond(c, meds, "Medicamentos del residente obtenidos exitosamente")
}

// CheckStock godoc
// @Summary Report the stock level of a medication
// @Tags medicaments
// @Produce json
// @Param stock query int true "Medication ID"
// @Success 200 {object} Response{data=model.StockReport}
// @Router /medicaments [get]
func (h *MedicationHandler) CheckStock(c echo.Context) error {
	report, err := h.svc.CheckStock(c.Request().Context(), queryID(c, "stock"))
	if err != nil {
		return respondError(c, nil, err, "Error al verificar stock")
	}
	return respond(c, report, "Stock verificado")
}

// ListLowStock godoc
// @Summary List active medications at or below the low stock threshold
// @Tags medicaments
// @Produce json
// @Param low_stock query string true "Any value"
// @Success 200 {object} Response{data=[]model.LowStockItem}
// @Router /medicaments [get]
func (h *MedicationHandler) ListLowStock(c echo.Context) error {
	items, err := h.svc.ListLowStock(c.Request().Context())
	if err != nil {
		return respondError(c, []model.LowStockItem{}, err, "Error al obtener medicamentos con stock bajo")
	}
	return respond(c, items, "Medicamentos con stock bajo obtenidos exitosamente")
}

// Count godoc
// @Summary Count active medications
// @Tags medicaments
// @Produce json
// @Param count query string true "Any value"
// @Success 200 {object} Response{data=int}
// @Router /medicaments [get]
func (h *MedicationHandler) Count(c echo.Context) error {
	count, err := h.svc.CountActive(c.Request().Context())
	if err != nil {
		return respondError(c, 0, err, "Error al contar medicamentos")
	}
	return respond(c, count, "Conteo realizado exitosamente")
}

// Create godoc
// @Summary Prescribe a medication to a resident
// @Tags medicaments
// @Accept json
// @Produce json
// @Param request body service.CreateMedicationInput true "Medication data"
// @Success 200 {object} MessageResponse
// @Router /medicaments [post]
func (h *MedicationHandler) Create(c echo.Context) error {
	var req service.CreateMedicationInput
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if _, err := h.svc.Create(c.Request().Context(), req); err != nil {
		return respondMessageError(c, err, "Error al añadir medicamento")
	}
	return respondMessage(c, true, "Medicamento creado exitosamente")
}

// Update godoc
// @Summary Update allowed fields of a medication
// @Tags medicaments
// @Accept json
// @Produce json
// @Param request body UpdateMedicationRequest true "Medication id and fields to change"
// @Success 200 {object} MessageResponse
// @Router /medicaments [put]
func (h *MedicationHandler) Update(c echo.Context) error {
	var req UpdateMedicationRequest
	if err := c.Bind(&req); err != nil {
		return respondMessage(c, false, "Solicitud inválida")
	}
	if req.ID == nil {
		return respondMessage(c, false, "ID de medicamento requerido para actualizar")
	}
	if err := h.svc.Update(c.Request().Context(), *req.ID, req.MedicationPatch); err != nil {
		return respondMessageError(c, err, "Error al actualizar medicamento")
	}
	return respondMessage(c, true, "Medicamento actualizado exitosamente")
}

// Delete godoc
// @Summary Deactivate a medication
// @Tags medicaments
// @Accept json
// @Produce json
// @Param id query int false "Medication ID (or in the body)"
// @Success 200 {object} MessageResponse
// @Router /medicaments [delete]
func (h *MedicationHandler) Delete(c echo.Context) error {
	id, ok := deleteID(c)
	if !ok {
		return respondMessage(c, false, "ID de medicamento requerido para eliminar")
	}
	changed, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		return respondMessageError(c, err, "Error al eliminar medicamento")
	}
	if !changed {
		return respondMessage(c, false, "No se pudo eliminar el medicamento")
	}
	return respondMessage(c, true, "Medicamento eliminado exitosamente")
}
