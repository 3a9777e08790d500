package inspiration

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/dao/query"
)

type DBService interface {
	Create(ctx context.Context, inspiration *model.Inspiration) error
	GetByID(ctx context.Context, id uint) (*model.Inspiration, error)
	ListAll(ctx context.Context) ([]model.Inspiration, error)
	Update(ctx context.Context, inspiration *model.Inspiration) error
	Delete(ctx context.Context, id uint) error

	// ListImageRefs returns every non-empty image reference of live
	// inspirations, used by the orphan sweeper.
	ListImageRefs(ctx context.Context) ([]string, error)
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

func (s *service) Create(ctx context.Context, inspiration *model.Inspiration) error {
	return s.db.WithContext(ctx).Create(inspiration).Error
}

func (s *service) GetByID(ctx context.Context, id uint) (*model.Inspiration, error) {
	var inspiration model.Inspiration
	err := s.db.WithContext(ctx).First(&inspiration, id).Error
	if err != nil {
		return nil, err
	}
	return &inspiration, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.Inspiration, error) {
	var inspirations []model.Inspiration
	err := s.db.WithContext(ctx).Order("id DESC").Find(&inspirations).Error
	return inspirations, err
}

func (s *service) Update(ctx context.Context, inspiration *model.Inspiration) error {
	return s.db.WithContext(ctx).Save(inspiration).Error
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Inspiration{}, id).Error
}

func (s *service) ListImageRefs(ctx context.Context) ([]string, error) {
	var refs []string
	err := s.db.WithContext(ctx).Model(&model.Inspiration{}).
		Where("image <> ''").
		Pluck("image", &refs).Error
	return refs, err
}
