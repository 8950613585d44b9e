package service

import (
	"context"
	"strings"

	apperr "carehome/internal/errors"
	"carehome/internal/model"
	"carehome/internal/repository"
)

// CreateMedicationInput is the payload for prescribing a medication.
type CreateMedicationInput struct {
	ResidentID       uint    `json:"residente_id"`
	Name             string  `json:"nombre"`
	Dose             string  `json:"dosis"`
	Frequency        string  `json:"frecuencia"`
	Instructions     *string `json:"indicaciones"`
	StartDate        string  `json:"fecha_inicio"`
	EndDate          *string `json:"fecha_fin"`
	Stock            *int    `json:"stock"`
	Laboratory       *string `json:"laboratorio"`
	ActiveIngredient *string `json:"principio_activo"`
}

// MedicationService exposes medication operations.
type MedicationService interface {
	List(ctx context.Context) ([]model.MedicationWithResident, error)
	Get(ctx context.Context, id uint) (*model.MedicationWithResident, error)
	Create(ctx context.Context, in CreateMedicationInput) (*model.Medication, error)
	Update(ctx context.Context, id uint, patch model.MedicationPatch) error
	Delete(ctx context.Context, id uint) (bool, error)
	ListByResident(ctx context.Context, residentID uint) ([]model.Medication, error)
	CheckStock(ctx context.Context, id uint) (*model.StockReport, error)
	CountActive(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context) ([]model.LowStockItem, error)
}

type medicationService struct {
	repo      repository.MedicationRepository
	residents repository.ResidentRepository
}

// NewMedicationService creates a new medication service.
func NewMedicationService(
	repo repository.MedicationRepository,
	residents repository.ResidentRepository,
) MedicationService {
	return &medicationService{
		repo:      repo,
		residents: residents,
	}
}

func (s *medicationService) List(ctx context.Context) ([]model.MedicationWithResident, error) {
	medications, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, persistenceFault("Error al listar medicamentos", err)
	}
	return medications, nil
}

func (s *medicationService) Get(ctx context.Context, id uint) (*model.MedicationWithResident, error) {
	if id == 0 {
		return nil, apperr.Validation("ID de medicamento requerido")
	}

	// Not cached: the joined resident name changes outside this service.
	medication, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, apperr.NotFound("Medicamento no encontrado")
		}
		return nil, persistenceFault("Error al obtener medicamento", err)
	}
	return medication, nil
}

func (s *medicationService) Create(ctx context.Context, in CreateMedicationInput) (*model.Medication, error) {
	if in.ResidentID == 0 {
		return nil, apperr.Validation("Campo requerido: residente_id")
	}
	if name, ok := requireFields(
		field{"nombre", in.Name},
		field{"dosis", in.Dose},
		field{"frecuencia", in.Frequency},
		field{"fecha_inicio", in.StartDate},
	); !ok {
		return nil, apperr.Validation("Campo requerido: " + name)
	}

	startDate, ok := parseRequiredDate(in.StartDate)
	if !ok {
		return nil, apperr.Validation("Fecha inválida: fecha_inicio")
	}
	var endDate *model.Date
	if end := optionalString(in.EndDate); end != nil {
		d, ok := parseRequiredDate(*end)
		if !ok {
			return nil, apperr.Validation("Fecha inválida: fecha_fin")
		}
		endDate = &d
	}
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, apperr.Validation("El stock no puede ser negativo")
	}

	exists, err := s.residents.Exists(ctx, in.ResidentID)
	if err != nil {
		return nil, persistenceFault("Error al crear medicamento", err)
	}
	if !exists {
		return nil, apperr.NotFound("Residente no encontrado")
	}

	medication := &model.Medication{
		ResidentID:       in.ResidentID,
		Name:             strings.TrimSpace(in.Name),
		Dose:             strings.TrimSpace(in.Dose),
		Frequency:        strings.TrimSpace(in.Frequency),
		Instructions:     in.Instructions,
		StartDate:        startDate,
		EndDate:          endDate,
		Stock:            stock,
		Laboratory:       optionalString(in.Laboratory),
		ActiveIngredient: optionalString(in.ActiveIngredient),
		Active:           true,
	}
	if err := s.repo.Create(ctx, medication); err != nil {
		return nil, persistenceFault("Error al crear medicamento", err)
	}
	return medication, nil
}

func (s *medicationService) Update(ctx context.Context, id uint, patch model.MedicationPatch) error {
	if id == 0 {
		return apperr.Validation("ID de medicamento requerido")
	}
	fields := patch.Assignments()
	if len(fields) == 0 {
		return apperr.Validation("No hay campos para actualizar")
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return apperr.Validation("El stock no puede ser negativo")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return persistenceFault("Error al actualizar medicamento", err)
	}
	if !exists {
		return apperr.NotFound("Medicamento no encontrado")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return persistenceFault("Error al actualizar medicamento", err)
	}
	return nil
}

// Delete soft-deletes a medication and reports whether a row changed.
func (s *medicationService) Delete(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, apperr.Validation("ID de medicamento requerido")
	}
	changed, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return false, persistenceFault("Error al eliminar medicamento", err)
	}
	return changed, nil
}

func (s *medicationService) ListByResident(ctx context.Context, residentID uint) ([]model.Medication, error) {
	if residentID == 0 {
		return nil, apperr.Validation("ID de residente requerido")
	}
	medications, err := s.repo.ListByResident(ctx, residentID)
	if err != nil {
		return nil, persistenceFault("Error al obtener medicamentos del residente", err)
	}
	return medications, nil
}

// CheckStock reports the stock of one medication with its derived status.
func (s *medicationService) CheckStock(ctx context.Context, id uint) (*model.StockReport, error) {
	if id == 0 {
		return nil, apperr.Validation("ID de medicamento requerido")
	}
	report, err := s.repo.FindStock(ctx, id)
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, apperr.NotFound("Medicamento no encontrado")
		}
		return nil, persistenceFault("Error al verificar stock", err)
	}
	report.Status = model.StockStatus(report.Stock)
	return report, nil
}

func (s *medicationService) CountActive(ctx context.Context) (int64, error) {
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, persistenceFault("Error al contar medicamentos", err)
	}
	return count, nil
}

func (s *medicationService) ListLowStock(ctx context.Context) ([]model.LowStockItem, error) {
	items, err := s.repo.ListLowStock(ctx, model.LowStockThreshold)
	if err != nil {
		return nil, persistenceFault("Error al obtener medicamentos con stock bajo", err)
	}
	return items, nil
}
