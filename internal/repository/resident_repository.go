package repository

import (
	"context"

	"gorm.io/gorm"

	"carehome/internal/model"
)

// ResidentRepository defines resident persistence operations.
type ResidentRepository interface {
	Create(ctx context.Context, resident *model.Resident) error
	FindByID(ctx context.Context, id uint) (*model.Resident, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListActive(ctx context.Context) ([]model.Resident, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Deactivate(ctx context.Context, id uint) (bool, error)
	Search(ctx context.Context, term string) ([]model.Resident, error)
	ListByHealthStatus(ctx context.Context, status string) ([]model.Resident, error)
	CountActive(ctx context.Context) (int64, error)
}

type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository builds a GORM-backed repository.
func NewResidentRepository(db *gorm.DB) ResidentRepository {
	return &residentRepository{db: db}
}

func (r *residentRepository) Create(ctx context.Context, resident *model.Resident) error {
	return r.db.WithContext(ctx).Create(resident).Error
}

// FindByID returns the resident regardless of its active flag.
func (r *residentRepository) FindByID(ctx context.Context, id uint) (*model.Resident, error) {
	var resident model.Resident
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resident).Error; err != nil {
		return nil, err
	}
	return &resident, nil
}

func (r *residentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Resident{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *residentRepository) ListActive(ctx context.Context) ([]model.Resident, error) {
	var residents []model.Resident
	if err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("fecha_ingreso DESC").
		Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

// Update applies column assignments to one resident.
func (r *residentRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Resident{}).Where("id = ?", id).Updates(fields).Error
}

// Deactivate clears the active flag and reports whether a row changed.
func (r *residentRepository) Deactivate(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Resident{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Search matches term against name, surname and document number of active residents.
func (r *residentRepository) Search(ctx context.Context, term string) ([]model.Resident, error) {
	pattern := containsPattern(term)
	var residents []model.Resident
	if err := r.db.WithContext(ctx).
		Where("(LOWER(nombre) LIKE ? OR LOWER(apellido) LIKE ? OR LOWER(num_doc) LIKE ?) AND activo = ?",
			pattern, pattern, pattern, true).
		Order("nombre, apellido").
		Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *residentRepository) ListByHealthStatus(ctx context.Context, status string) ([]model.Resident, error) {
	var residents []model.Resident
	if err := r.db.WithContext(ctx).
		Where("estado_salud = ? AND activo = ?", status, true).
		Order("fecha_ingreso DESC").
		Find(&residents).Error; err != nil {
		return nil, err
	}
	return residents, nil
}

func (r *residentRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Resident{}).Where("activo = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
