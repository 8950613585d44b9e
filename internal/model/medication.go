package model

import "time"

// LowStockThreshold is the highest stock still reported as low.
const LowStockThreshold = 5

// Stock status values derived from a medication's stock.
const (
	StockOut = "AGOTADO"
	StockLow = "BAJO"
	StockOK  = "OK"
)

// Medication is a medicine prescribed to a resident.
type Medication struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	ResidentID       uint      `json:"residente_id" gorm:"column:residente_id;not null;index:idx_medicaments_residente_id"`
	Name             string    `json:"nombre" gorm:"column:nombre;size:120;not null"`
	Dose             string    `json:"dosis" gorm:"column:dosis;size:50;not null"`
	Frequency        string    `json:"frecuencia" gorm:"column:frecuencia;size:100;not null"`
	Instructions     *string   `json:"indicaciones" gorm:"column:indicaciones;type:text"`
	StartDate        Date      `json:"fecha_inicio" gorm:"column:fecha_inicio;type:date;not null;index:idx_medicaments_fecha_inicio"`
	EndDate          *Date     `json:"fecha_fin" gorm:"column:fecha_fin;type:date"`
	Stock            int       `json:"stock" gorm:"column:stock;type:int unsigned;default:0"`
	Laboratory       *string   `json:"laboratorio" gorm:"column:laboratorio;size:100"`
	ActiveIngredient *string   `json:"principio_activo" gorm:"column:principio_activo;size:120"`
	Active           bool      `json:"activo" gorm:"column:activo;default:true;index:idx_medicaments_activo"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Resident *Resident `json:"-" gorm:"foreignKey:ResidentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName keeps the table name used by existing deployments.
func (Medication) TableName() string {
	return "medicaments"
}

// MedicationWithResident is a medication row joined with its resident's display name.
type MedicationWithResident struct {
	Medication
	ResidentName string `json:"residente_nombre" gorm:"column:residente_nombre"`
}

// LowStockItem is a row of the low-stock report.
type LowStockItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"nombre" gorm:"column:nombre"`
	Stock        int    `json:"stock" gorm:"column:stock"`
	ResidentName string `json:"residente_nombre" gorm:"column:residente_nombre"`
}

// StockReport is the answer to a stock check.
type StockReport struct {
	ID         uint    `json:"id"`
	Name       string  `json:"nombre" gorm:"column:nombre"`
	Stock      int     `json:"stock" gorm:"column:stock"`
	Laboratory *string `json:"laboratorio" gorm:"column:laboratorio"`
	StartDate  Date    `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	Status     string  `json:"status" gorm:"-"`
}

// StockStatus derives the stock status shown to staff.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= LowStockThreshold:
		return StockLow
	default:
		return StockOK
	}
}

// MedicationPatch lists the medication fields that may change after creation.
type MedicationPatch struct {
	Name             *string      `json:"nombre"`
	Dose             *string      `json:"dosis"`
	Frequency        *string      `json:"frecuencia"`
	Instructions     *string      `json:"indicaciones"`
	StartDate        *Date        `json:"fecha_inicio"`
	EndDate          NullableDate `json:"fecha_fin"`
	Stock            *int         `json:"stock"`
	Laboratory       *string      `json:"laboratorio"`
	ActiveIngredient *string      `json:"principio_activo"`
	Active           *bool        `json:"activo"`
}

// Assignments maps the set fields to their column names.
func (p MedicationPatch) Assignments() map[string]interface{} {
	set := make(map[string]interface{})
	putString(set, "nombre", p.Name)
	putString(set, "dosis", p.Dose)
	putString(set, "frecuencia", p.Frequency)
	putString(set, "indicaciones", p.Instructions)
	if p.StartDate != nil {
		set["fecha_inicio"] = *p.StartDate
	}
	if p.EndDate.Set {
		set["fecha_fin"] = p.EndDate.assignment()
	}
	if p.Stock != nil {
		set["stock"] = *p.Stock
	}
	putString(set, "laboratorio", p.Laboratory)
	putString(set, "principio_activo", p.ActiveIngredient)
	if p.Active != nil {
		set["activo"] = *p.Active
	}
	return set
}

// IsEmpty reports whether the patch changes nothing.
func (p MedicationPatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}
