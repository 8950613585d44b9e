package service

import (
	"context"
	"strings"

	"carehome/internal/auth"
	apperr "carehome/internal/errors"
	"carehome/internal/model"
	"carehome/internal/repository"
)

// EmployeeRegistration carries the ten fields of the staff registration form.
type EmployeeRegistration struct {
	Name           string `json:"nombre"`
	Surname        string `json:"apellido"`
	DocumentType   string `json:"tipoDoc"`
	DocumentNumber string `json:"numDoc"`
	Address        string `json:"direccion"`
	Phone          string `json:"telefono"`
	Email          string `json:"correo"`
	JobTitle       string `json:"cargo"`
	Username       string `json:"usuario"`
	Password       string `json:"contrasena"`
}

// AccountService handles account registration, credentials and lookups.
type AccountService interface {
	RegisterSimple(ctx context.Context, username, email, password string) error
	RegisterEmployee(ctx context.Context, in EmployeeRegistration) (*model.Identity, error)
	VerifyCredentials(ctx context.Context, username, password string) (*model.Identity, error)
	GetByEmail(ctx context.Context, email string) (*model.Identity, error)
	UpdatePasswordByEmail(ctx context.Context, email, newPassword string) error
	Exists(ctx context.Context, username, email string) (bool, error)
}

type accountService struct {
	users repository.UserRepository
}

// NewAccountService creates a new account service.
func NewAccountService(users repository.UserRepository) AccountService {
	return &accountService{users: users}
}

// RegisterSimple validates the short sign-up form but never creates an account:
// accounts require identity and contact data this form does not collect.
func (s *accountService) RegisterSimple(ctx context.Context, username, email, password string) error {
	if ok, msg := ValidateUsername(username); !ok {
		return apperr.Validation(msg)
	}
	if !ValidateEmail(email) {
		return apperr.Validation("Email inválido")
	}
	if ok, msg := ValidatePassword(password); !ok {
		return apperr.Validation(msg)
	}
	return apperr.Validation("Registro simple no soportado: la tabla usuario exige datos adicionales. Use el registro de empleados.")
}

// RegisterEmployee creates the account and its employee profile atomically.
func (s *accountService) RegisterEmployee(ctx context.Context, in EmployeeRegistration) (*model.Identity, error) {
	if name, ok := requireFields(
		field{"nombre", in.Name},
		field{"apellido", in.Surname},
		field{"tipoDoc", in.DocumentType},
		field{"numDoc", in.DocumentNumber},
		field{"direccion", in.Address},
		field{"telefono", in.Phone},
		field{"correo", in.Email},
		field{"cargo", in.JobTitle},
		field{"usuario", in.Username},
		field{"contrasena", in.Password},
	); !ok {
		return nil, apperr.Validation("Todos los campos son requeridos. Falta: " + name)
	}

	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if ok, msg := ValidateUsername(username); !ok {
		return nil, apperr.Validation(msg)
	}
	if !ValidateEmail(email) {
		return nil, apperr.Validation("Formato de email inválido")
	}
	if ok, msg := ValidatePassword(in.Password); !ok {
		return nil, apperr.Validation(msg)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, persistenceFault("Error al registrar empleado", err)
	}

	user := &model.User{
		DocumentType:   strings.TrimSpace(in.DocumentType),
		DocumentNumber: strings.TrimSpace(in.DocumentNumber),
		Name:           strings.TrimSpace(in.Name),
		Surname:        strings.TrimSpace(in.Surname),
		Address:        strings.TrimSpace(in.Address),
		Phone:          strings.TrimSpace(in.Phone),
		Email:          email,
		Username:       username,
		PasswordHash:   hash,
		RoleCode:       model.RoleEmployee,
		Relationship:   "",
	}

	err = s.users.WithTransaction(ctx, func(ctx context.Context, tx repository.UserRepository) error {
		if err := tx.Create(ctx, user); err != nil {
			return err
		}
		return tx.CreateEmployee(ctx, &model.Employee{
			UserID:         user.ID,
			Name:           user.Name,
			Surname:        user.Surname,
			DocumentType:   user.DocumentType,
			DocumentNumber: user.DocumentNumber,
			Address:        user.Address,
			Phone:          user.Phone,
			Email:          email,
			JobTitle:       strings.TrimSpace(in.JobTitle),
		})
	})
	if err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("Datos duplicados: usuario, email o documento ya existen", err)
		}
		return nil, persistenceFault("Error al registrar empleado", err)
	}

	return &model.Identity{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// VerifyCredentials checks a username and password. Unknown usernames and wrong
// passwords fail identically.
func (s *accountService) VerifyCredentials(ctx context.Context, username, password string) (*model.Identity, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil && !apperr.IsRecordNotFound(err) {
		return nil, persistenceFault("Error al verificar usuario", err)
	}

	hash := ""
	if user != nil {
		hash = user.PasswordHash
	}
	if err := auth.CheckPassword(hash, password); err != nil {
		return nil, apperr.Validation("Usuario o contraseña incorrectos")
	}

	return &model.Identity{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

func (s *accountService) GetByEmail(ctx context.Context, email string) (*model.Identity, error) {
	identity, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if apperr.IsRecordNotFound(err) {
			return nil, apperr.NotFound("Email no registrado")
		}
		return nil, persistenceFault("Error al buscar usuario", err)
	}
	return identity, nil
}

func (s *accountService) UpdatePasswordByEmail(ctx context.Context, email, newPassword string) error {
	if ok, msg := ValidatePassword(newPassword); !ok {
		return apperr.Validation(msg)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return persistenceFault("Error al actualizar contraseña", err)
	}

	changed, err := s.users.UpdatePasswordByEmail(ctx, strings.TrimSpace(email), hash)
	if err != nil {
		return persistenceFault("Error al actualizar contraseña", err)
	}
	if changed == 0 {
		return apperr.NotFound("Email no encontrado")
	}
	return nil
}

// Exists reports whether the username, or the email when given, is taken.
func (s *accountService) Exists(ctx context.Context, username, email string) (bool, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" && email == "" {
		return false, apperr.Validation("Usuario o email requerido")
	}
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return false, persistenceFault("Error al verificar usuario", err)
	}
	return exists, nil
}
