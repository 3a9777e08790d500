package artist

import (
	"context"

	"gorm.io/gorm"

	"github.com/atelier-lab/atelier/dao/model"
	"github.com/atelier-lab/atelier/dao/query"
)

type DBService interface {
	Create(ctx context.Context, artist *model.Artist) error
	GetByID(ctx context.Context, id uint) (*model.Artist, error)
	GetByName(ctx context.Context, name string) (*model.Artist, error)
	ListAll(ctx context.Context) ([]model.Artist, error)
	Update(ctx context.Context, artist *model.Artist) error
	Delete(ctx context.Context, id uint) error

	// ListImageRefs returns every non-empty avatar and benchmark image
	// reference of live artists, used by the orphan sweeper.
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

func (s *service) Create(ctx context.Context, artist *model.Artist) error {
	return s.db.WithContext(ctx).Create(artist).Error
}

func (s *service) GetByID(ctx context.Context, id uint) (*model.Artist, error) {
	var artist model.Artist
	err := s.db.WithContext(ctx).First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*model.Artist, error) {
	var artist model.Artist
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&artist).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.Artist, error) {
	var artists []model.Artist
	err := s.db.WithContext(ctx).Order("name").Find(&artists).Error
	return artists, err
}

func (s *service) Update(ctx context.Context, artist *model.Artist) error {
	return s.db.WithContext(ctx).Save(artist).Error
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Artist{}, id).Error
}

func (s *service) ListImageRefs(ctx context.Context) ([]string, error) {
	var artists []model.Artist
	err := s.db.WithContext(ctx).
		Select("avatar", "benchmark_images").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	var refs []string
	for i := range artists {
		if artists[i].Avatar != "" {
			refs = append(refs, artists[i].Avatar)
		}
		for _, img := range artists[i].BenchmarkImages {
			if img != "" {
				refs = append(refs, img)
			}
		}
	}
	return refs, nil
}
