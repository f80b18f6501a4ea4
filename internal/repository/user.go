package repository

import (
	"errors"

	"portfolio-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code for unique constraint violations
const uniqueViolation = "23505"

// UserRepositoryInterface defines the user directory operations
type UserRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByProviderID(provider, providerID string) (*models.User, error)
	ResolveOrCreate(user *models.User) (*models.User, error)
}

// UserRepository handles database operations for the user directory
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByProviderID retrieves a user by the (provider, provider_id) identity pair
func (r *UserRepository) GetByProviderID(provider, providerID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "provider = ? AND provider_id = ?", provider, providerID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ResolveOrCreate looks up a user by the (provider, provider_id) pair and
// creates one from the supplied record if absent. Profile fields of an
// existing user are never refreshed. A concurrent first-login race is
// resolved by the unique index: the losing insert retries as a lookup.
func (r *UserRepository) ResolveOrCreate(user *models.User) (*models.User, error) {
	existing, err := r.GetByProviderID(user.Provider, user.ProviderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := r.db.Create(user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return r.GetByProviderID(user.Provider, user.ProviderID)
		}
		return nil, err
	}
	return user, nil
}
