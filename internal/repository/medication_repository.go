package repository

import (
	"context"

	"gorm.io/gorm"

	"carehome/internal/model"
)

const residentDisplayName = "CONCAT(r.nombre, ' ', r.apellido) AS residente_nombre"

// MedicationRepository defines medication persistence operations.
type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) error
	FindByID(ctx context.Context, id uint) (*model.MedicationWithResident, error)
	Exists(ctx context.Context, id uint) (bool, error)
	ListActive(ctx context.Context) ([]model.MedicationWithResident, error)
	ListByResident(ctx context.Context, residentID uint) ([]model.Medication, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Deactivate(ctx context.Context, id uint) (bool, error)
	FindStock(ctx context.Context, id uint) (*model.StockReport, error)
	CountActive(ctx context.Context) (int64, error)
	ListLowStock(ctx context.Context, threshold int) ([]model.LowStockItem, error)
}

type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository creates a new medication repository.
func NewMedicationRepository(db *gorm.DB) MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("medicaments AS m").
		Select("m.*, " + residentDisplayName).
		Joins("JOIN residents r ON m.residente_id = r.id")
}

func (r *medicationRepository) Create(ctx context.Context, medication *model.Medication) error {
	return r.db.WithContext(ctx).Omit("Resident").Create(medication).Error
}

// FindByID returns the medication with its resident's name, regardless of status.
func (r *medicationRepository) FindByID(ctx context.Context, id uint) (*model.MedicationWithResident, error) {
	var rows []model.MedicationWithResident
	if err := r.joined(ctx).Where("m.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *medicationRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Medication{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *medicationRepository) ListActive(ctx context.Context) ([]model.MedicationWithResident, error) {
	var rows []model.MedicationWithResident
	if err := r.joined(ctx).
		Where("m.activo = ?", true).
		Order("m.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *medicationRepository) ListByResident(ctx context.Context, residentID uint) ([]model.Medication, error) {
	var medications []model.Medication
	if err := r.db.WithContext(ctx).
		Where("residente_id = ? AND activo = ?", residentID, true).
		Order("fecha_inicio DESC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (r *medicationRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Medication{}).Where("id = ?", id).Updates(fields).Error
}

// Deactivate clears the active flag and reports whether a row changed.
func (r *medicationRepository) Deactivate(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Medication{}).
		Where("id = ? AND activo = ?", id, true).
		Update("activo", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// FindStock loads the fields needed for a stock check. Status is left for the caller.
func (r *medicationRepository) FindStock(ctx context.Context, id uint) (*model.StockReport, error) {
	var report model.StockReport
	if err := r.db.WithContext(ctx).
		Table("medicaments").
		Select("id, nombre, stock, laboratorio, fecha_inicio").
		Where("id = ?", id).
		Take(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *medicationRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Medication{}).Where("activo = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListLowStock returns active medications with stock at or below threshold, lowest first.
func (r *medicationRepository) ListLowStock(ctx context.Context, threshold int) ([]model.LowStockItem, error) {
	var items []model.LowStockItem
	if err := r.db.WithContext(ctx).
		Table("medicaments AS m").
		Select("m.id, m.nombre, m.stock, r.nombre AS residente_nombre").
		Joins("JOIN residents r ON m.residente_id = r.id").
		Where("m.stock <= ? AND m.activo = ?", threshold, true).
		Order("m.stock ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
