package model

// RoleEmployee is the role code given to accounts created through employee registration.
const RoleEmployee = 2

// User is a login account. The table keeps its historical name.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	DocumentType   string `json:"tipo_doc" gorm:"column:tipo_doc;size:30;not null"`
	DocumentNumber string `json:"doc_id" gorm:"column:doc_id;size:30;not null"`
	Name           string `json:"nombre" gorm:"column:nombre;size:80;not null"`
	Surname        string `json:"apellido" gorm:"column:apellido;size:80;not null"`
	Address        string `json:"direccion" gorm:"column:direccion;size:150;not null"`
	Phone          string `json:"telefono" gorm:"column:telefono;size:30;not null"`
	Email          string `json:"email" gorm:"column:email;size:120;not null;uniqueIndex:uk_usuario_email"`
	Username       string `json:"usuario" gorm:"column:usuario;size:20;not null;uniqueIndex:uk_usuario_usuario"`
	PasswordHash   string `json:"-" gorm:"column:contrasena;size:255;not null"` // Never expose in JSON
	RoleCode       int    `json:"cod_rol" gorm:"column:cod_rol;not null"`
	Relationship   string `json:"parentesco" gorm:"column:parentesco;size:50;not null;default:''"`
}

// TableName keeps the table name used by existing deployments.
func (User) TableName() string {
	return "usuario"
}

// Identity is the minimal projection returned by logins and lookups.
type Identity struct {
	ID       uint   `json:"id"`
	Username string `json:"usuario" gorm:"column:usuario"`
	Email    string `json:"email"`
}
