package model

import "time"

// Resident represents a person living in the facility.
type Resident struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"nombre" gorm:"column:nombre;size:80;not null"`
	Surname            string    `json:"apellido" gorm:"column:apellido;size:80;not null"`
	BirthDate          Date      `json:"fecha_nacimiento" gorm:"column:fecha_nacimiento;type:date;not null"`
	DocumentType       string    `json:"tipo_doc" gorm:"column:tipo_doc;size:30;not null"`
	DocumentNumber     string    `json:"num_doc" gorm:"column:num_doc;size:30;not null;uniqueIndex:uk_residents_num_doc"`
	Address            string    `json:"direccion" gorm:"column:direccion;size:150;not null"`
	Phone              *string   `json:"telefono" gorm:"column:telefono;size:30"`
	Email              *string   `json:"email" gorm:"column:email;size:120"`
	HealthStatus       *string   `json:"estado_salud" gorm:"column:estado_salud;size:50"`
	Allergies          *string   `json:"alergias" gorm:"column:alergias;type:text"`
	CurrentMedications *string   `json:"medicamentos_actuales" gorm:"column:medicamentos_actuales;type:text"`
	AdmissionDate      Date      `json:"fecha_ingreso" gorm:"column:fecha_ingreso;type:date;not null;index:idx_residents_fecha_ingreso"`
	DischargeDate      *Date     `json:"fecha_egreso" gorm:"column:fecha_egreso;type:date"`
	Active             bool      `json:"activo" gorm:"column:activo;default:true;index:idx_residents_activo"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName keeps the table name used by existing deployments.
func (Resident) TableName() string {
	return "residents"
}

// ResidentPatch lists the resident fields that may change after creation.
// Nil fields and an unset DischargeDate are left untouched.
type ResidentPatch struct {
	Name               *string      `json:"nombre"`
	Surname            *string      `json:"apellido"`
	HealthStatus       *string      `json:"estado_salud"`
	Allergies          *string      `json:"alergias"`
	CurrentMedications *string      `json:"medicamentos_actuales"`
	Email              *string      `json:"email"`
	Phone              *string      `json:"telefono"`
	Address            *string      `json:"direccion"`
	DischargeDate      NullableDate `json:"fecha_egreso"`
	Active             *bool        `json:"activo"`
}

// Assignments maps the set fields to their column names.
func (p ResidentPatch) Assignments() map[string]interface{} {
	set := make(map[string]interface{})
	putString(set, "nombre", p.Name)
	putString(set, "apellido", p.Surname)
	putString(set, "estado_salud", p.HealthStatus)
	putString(set, "alergias", p.Allergies)
	putString(set, "medicamentos_actuales", p.CurrentMedications)
	putString(set, "email", p.Email)
	putString(set, "telefono", p.Phone)
	putString(set, "direccion", p.Address)
	if p.DischargeDate.Set {
		set["fecha_egreso"] = p.DischargeDate.assignment()
	}
	if p.Active != nil {
		set["activo"] = *p.Active
	}
	return set
}

// IsEmpty reports whether the patch changes nothing.
func (p ResidentPatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

func putString(set map[string]interface{}, column string, v *string) {
	if v != nil {
		set[column] = *v
	}
}
