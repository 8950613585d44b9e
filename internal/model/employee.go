package model

import "time"

// Employee is the staff profile attached to a User.
type Employee struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"usuario_id" gorm:"column:usuario_id;not null;index:idx_employees_usuario_id"`
	Name           string    `json:"nombre" gorm:"column:nombre;size:80;not null"`
	Surname        string    `json:"apellido" gorm:"column:apellido;size:80;not null"`
	DocumentType   string    `json:"tipo_doc" gorm:"column:tipo_doc;size:30;not null"`
	DocumentNumber string    `json:"num_doc" gorm:"column:num_doc;size:30;not null;uniqueIndex:uk_employees_num_doc"`
	Address        string    `json:"direccion" gorm:"column:direccion;size:150;not null"`
	Phone          string    `json:"telefono" gorm:"column:telefono;size:30;not null"`
	Email          string    `json:"correo" gorm:"column:correo;size:120;not null"`
	JobTitle       string    `json:"cargo" gorm:"column:cargo;size:80;not null"`
	CreatedAt      time.Time `json:"created_at"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName keeps the table name used by existing deployments.
func (Employee) TableName() string {
	return "employees"
}
