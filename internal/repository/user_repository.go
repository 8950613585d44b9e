package repository

import (
	"context"

	"gorm.io/gorm"

	"carehome/internal/model"
)

// UserRepository defines account persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.Identity, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (int64, error)
	// WithTransaction runs fn against a repository bound to one transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Omit("User").Create(employee).Error
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("usuario = ?", username).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.Identity, error) {
	var identity model.Identity
	if err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id, usuario, email").
		Where("email = ?", email).
		Take(&identity).Error; err != nil {
		return nil, err
	}
	return &identity, nil
}

// ExistsByUsernameOrEmail checks the username, and the email too when non-empty.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&model.User{})
	if email != "" {
		q = q.Where("usuario = ? OR email = ?", username, email)
	} else {
		q = q.Where("usuario = ?", username)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdatePasswordByEmail stores a new hash and returns the number of accounts changed.
func (r *userRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Update("contrasena", passwordHash)
	return res.RowsAffected, res.Error
}

func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &userRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
