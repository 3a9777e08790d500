package chain

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/dao/query"
)

type DBService interface {
	Create(ctx context.Context, chain *model.Chain) error
	GetByID(ctx context.Context, id uint) (*model.Chain, error)

	// ListVisible returns the chains the user may see: their own plus
	// shared and unowned ones.
	ListVisible(ctx context.Context, userID uint) ([]model.Chain, error)
	ListAll(ctx context.Context) ([]model.Chain, error)

	Update(ctx context.Context, chain *model.Chain) error
	Delete(ctx context.Context, id uint) error

	// ListCoverRefs returns every non-empty cover reference of live
	// chains, used by the orphan sweeper.
	ListCoverRefs(ctx context.Context) ([]string, error)
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

func (s *service) Create(ctx context.Context, chain *model.Chain) error {
	return s.db.WithContext(ctx).Create(chain).Error
}

func (s *service) GetByID(ctx context.Context, id uint) (*model.Chain, error) {
	var chain model.Chain
	err := s.db.WithContext(ctx).First(&chain, id).Error
	if err != nil {
		return nil, err
	}
	return &chain, nil
}

func (s *service) ListVisible(ctx context.Context, userID uint) ([]model.Chain, error) {
	var chains []model.Chain
	err := s.db.WithContext(ctx).
		Where("owner_id = ? OR shared = ? OR owner_id IS NULL", userID, true).
		Order("id DESC").
		Find(&chains).Error
	return chains, err
}

func (s *service) ListAll(ctx context.Context) ([]model.Chain, error) {
	var chains []model.Chain
	err := s.db.WithContext(ctx).Order("id DESC").Find(&chains).Error
	return chains, err
}

func (s *service) Update(ctx context.Context, chain *model.Chain) error {
	return s.db.WithContext(ctx).Save(chain).Error
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Chain{}, id).Error
}

func (s *service) ListCoverRefs(ctx context.Context) ([]string, error) {
	var refs []string
	err := s.db.WithContext(ctx).Model(&model.Chain{}).
		Where("cover <> ''").
		Pluck("cover", &refs).Error
	return refs, err
}
