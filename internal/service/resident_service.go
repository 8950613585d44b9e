package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"carehome/internal/cache"
	apperr "carehome/internal/errors"
	"carehome/internal/model"
	"carehome/internal/repository"
)

const residentCacheTTL = 5 * time.Minute

// CreateResidentInput is the payload for registering a resident.
type CreateResidentInput struct {
	Name               string  `json:"nombre"`
	Surname            string  `json:"apellido"`
	BirthDate          string  `json:"fecha_nacimiento"`
	DocumentType       string  `json:"tipo_doc"`
	DocumentNumber     string  `json:"num_doc"`
	Address            string  `json:"direccion"`
	Phone              *string `json:"telefono"`
	Email              *string `json:"email"`
	HealthStatus       *string `json:"estado_salud"`
	Allergies          *string `json:"alergias"`
	CurrentMedications *string `json:"medicamentos_actuales"`
	AdmissionDate      string  `json:"fecha_ingreso"`
}

// ResidentService exposes resident operations.
type ResidentService interface {
	List(ctx context.Context) ([]model.Resident, error)
	Get(ctx context.Context, id uint) (*model.Resident, error)
	Create(ctx context.Context, in CreateResidentInput) (*model.Resident, error)
	Update(ctx context.Context, id uint, patch model.ResidentPatch) error
	Delete(ctx context.Context, id uint) (bool, error)
	Search(ctx context.Context, term string) ([]model.Resident, error)
	ListByStatus(ctx context.Context, status string) ([]model.Resident, error)
	CountActive(ctx context.Context) (int64, error)
}

type residentService struct {
	repo  repository.ResidentRepository
	cache *cache.Client
}

// NewResidentService builds a ResidentService with repository and cache.
func NewResidentService(repo repository.ResidentRepository, cache *cache.Client) ResidentService {
	return &residentService{repo: repo, cache: cache}
}

func (s *residentService) cacheKey(id uint) string {
	return fmt.Sprintf("resident:%d", id)
}

func (s *residentService) List(ctx context.Context) ([]model.Resident, error) {
	residents, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, persistenceFault("Error al listar residentes", err)
	}
	return residents, nil
}

func (s *residentService) Get(ctx context.Context, id uint) (*model.Resident, error) {
	if id == 0 {
		return nil, apperr.Validation("ID de residente requerido")
	}

	var cached model.Resident
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	resident, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, apperr.NotFound("Residente no encontrado")
		}
		return nil, persistenceFault("Error al obtener residente", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), resident, residentCacheTTL)
	return resident, nil
}

func (s *residentService) Create(ctx context.Context, in CreateResidentInput) (*model.Resident, error) {
	if name, ok := requireFields(
		field{"nombre", in.Name},
		field{"apellido", in.Surname},
		field{"fecha_nacimiento", in.BirthDate},
		field{"tipo_doc", in.DocumentType},
		field{"num_doc", in.DocumentNumber},
		field{"direccion", in.Address},
		field{"fecha_ingreso", in.AdmissionDate},
	); !ok {
		return nil, apperr.Validation("Campo requerido: " + name)
	}

	birthDate, ok := parseRequiredDate(in.BirthDate)
	if !ok {
		return nil, apperr.Validation("Fecha inválida: fecha_nacimiento")
	}
	admissionDate, ok := parseRequiredDate(in.AdmissionDate)
	if !ok {
		return nil, apperr.Validation("Fecha inválida: fecha_ingreso")
	}

	resident := &model.Resident{
		Name:               strings.TrimSpace(in.Name),
		Surname:            strings.TrimSpace(in.Surname),
		BirthDate:          birthDate,
		DocumentType:       strings.TrimSpace(in.DocumentType),
		DocumentNumber:     strings.TrimSpace(in.DocumentNumber),
		Address:            strings.TrimSpace(in.Address),
		Phone:              optionalString(in.Phone),
		Email:              optionalString(in.Email),
		HealthStatus:       optionalString(in.HealthStatus),
		Allergies:          in.Allergies,
		CurrentMedications: in.CurrentMedications,
		AdmissionDate:      admissionDate,
		Active:             true,
	}

	if err := s.repo.Create(ctx, resident); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("El documento del residente ya existe", err)
		}
		return nil, persistenceFault("Error al crear residente", err)
	}
	return resident, nil
}

func (s *residentService) Update(ctx context.Context, id uint, patch model.ResidentPatch) error {
	if id == 0 {
		return apperr.Validation("ID de residente requerido")
	}
	fields := patch.Assignments()
	if len(fields) == 0 {
		return apperr.Validation("No hay campos para actualizar")
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return persistenceFault("Error al actualizar residente", err)
	}
	if !exists {
		return apperr.NotFound("Residente no encontrado")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return persistenceFault("Error al actualizar residente", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Delete soft-deletes a resident. It reports false, without error, when the id is
// unknown or the resident was already inactive.
func (s *residentService) Delete(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, apperr.Validation("ID de residente requerido")
	}
	changed, err := s.repo.Deactivate(ctx, id)
	if err != nil {
		return false, persistenceFault("Error al eliminar residente", err)
	}
	if changed {
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}
	return changed, nil
}

func (s *residentService) Search(ctx context.Context, term string) ([]model.Resident, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperr.Validation("Término de búsqueda requerido")
	}
	residents, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, persistenceFault("Error al buscar residentes", err)
	}
	return residents, nil
}

func (s *residentService) ListByStatus(ctx context.Context, status string) ([]model.Resident, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperr.Validation("Estado de salud requerido")
	}
	residents, err := s.repo.ListByHealthStatus(ctx, status)
	if err != nil {
		return nil, persistenceFault("Error al obtener residentes por estado", err)
	}
	return residents, nil
}

func (s *residentService) CountActive(ctx context.Context) (int64, error) {
	count, err := s.repo.CountActive(ctx)
	if err != nil {
		return 0, persistenceFault("Error al contar residentes", err)
	}
	return count, nil
}

// persistenceFault logs a store failure and tags it for the caller.
func persistenceFault(message string, err error) error {
	log.Error().Err(err).Msg(message)
	return apperr.Persistence(message, err)
}
