package session

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/dao/query"
)

type DBService interface {
	Create(ctx context.Context, session *model.Session) error

	// GetWithUser loads the session and its user in one query. Expiry is
	// not checked here, the caller decides what an expired row means.
	GetWithUser(ctx context.Context, token string) (*model.Session, error)

	// Delete removes the session. Deleting an unknown token is a no-op.
	Delete(ctx context.Context, token string) error

	DeleteByUserID(ctx context.Context, userID uint) error

	// DeleteExpired removes every session that expired before now and
	// returns how many rows went away.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	// CountActive counts the sessions that are still valid at now.
	CountActive(ctx context.Context, now time.Time) (int64, error)
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

func (s *service) Create(ctx context.Context, session *model.Session) error {
	return s.db.WithContext(ctx).Create(session).Error
}

func (s *service) GetWithUser(ctx context.Context, token string) (*model.Session, error) {
	var session model.Session
	err := s.db.WithContext(ctx).Preload("User").
		Where("token = ?", token).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *service) Delete(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{}).Error
}

func (s *service) DeleteByUserID(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Session{}).Error
}

func (s *service) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})
	return tx.RowsAffected, tx.Error
}

func (s *service) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Session{}).
		Where("expires_at > ?", now).
		Count(&count).Error
	return count, err
}
