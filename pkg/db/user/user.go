package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/dao/query"
)

type DBService interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUserName(ctx context.Context, name string) (*model.User, error)
	ListAllUsers(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	UpdateRole(ctx context.Context, name string, role model.Role) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error

	// DeleteByUserName removes the account for good. Sessions go with it
	// through the foreign key, resource owners fall back to NULL.
	DeleteByUserName(ctx context.Context, name string) error

	// AddStorageUsage adds delta bytes to the usage counter in a single
	// SQL update. Negative deltas are floored at zero.
	AddStorageUsage(ctx context.Context, id uint, delta int64) error

	// TryAddStorageUsage adds delta bytes only when the result stays
	// within limit, again in a single SQL update so that concurrent
	// uploads cannot jointly pass on a stale counter. It reports whether
	// the delta was applied.
	TryAddStorageUsage(ctx context.Context, id uint, delta, limit int64) (bool, error)
}

type service struct {
	db *gorm.DB
}

func NewDBService() DBService {
	return &service{db: query.GetDB()}
}

// NewDBServiceWithDB is for tests running against a stub database.
func NewDBServiceWithDB(db *gorm.DB) DBService {
	return &service{db: db}
}

func (s *service) Create(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *service) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) GetByUserName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) ListAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).Order("id DESC").Find(&users).Error
	return users, err
}

func (s *service) Update(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *service) UpdateRole(ctx context.Context, name string, role model.Role) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("name = ?", name).
		Update("role", role).Error
}

func (s *service) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword).Error
}

func (s *service) DeleteByUserName(ctx context.Context, name string) error {
	return s.db.WithContext(ctx).Unscoped().Where("name = ?", name).Delete(&model.User{}).Error
}

func (s *service) AddStorageUsage(ctx context.Context, id uint, delta int64) error {
	return s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("storage_usage", gorm.Expr("GREATEST(storage_usage + ?, 0)", delta)).Error
}

func (s *service) TryAddStorageUsage(ctx context.Context, id uint, delta, limit int64) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND storage_usage + ? <= ?", id, delta, limit).
		UpdateColumn("storage_usage", gorm.Expr("storage_usage + ?", delta))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
