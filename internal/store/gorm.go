package store

import (
	"context"

	"github.com/emrgen/portfolio/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) GetPersonalInfo(ctx context.Context) (*model.PersonalInfo, error) {
	var info model.PersonalInfo
	err := g.db.WithContext(ctx).Where("id = ?", model.SingletonID).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (g *GormStore) UpsertPersonalInfo(ctx context.Context, info *model.PersonalInfo) error {
	info.ID = model.SingletonID
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(info).Error
}

func (g *GormStore) GetSocialLinks(ctx context.Context) (*model.SocialLinks, error) {
	var links model.SocialLinks
	err := g.db.WithContext(ctx).Where("id = ?", model.SingletonID).First(&links).Error
	if err != nil {
		return nil, err
	}
	return &links, nil
}

func (g *GormStore) UpsertSocialLinks(ctx context.Context, links *model.SocialLinks) error {
	links.ID = model.SingletonID
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(links).Error
}

func (g *GormStore) GetSiteMetadata(ctx context.Context) (*model.SiteMetadata, error) {
	var meta model.SiteMetadata
	err := g.db.WithContext(ctx).Where("id = ?", model.SingletonID).First(&meta).Error
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (g *GormStore) UpsertSiteMetadata(ctx context.Context, meta *model.SiteMetadata) error {
	meta.ID = model.SingletonID
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(meta).Error
}

func (g *GormStore) ListEducation(ctx context.Context) ([]model.Education, error) {
	rows := make([]model.Education, 0)
	err := g.db.WithContext(ctx).Order("sort_order").Find(&rows).Error
	return rows, err
}

func (g *GormStore) DeleteAllEducation(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("id >= 0").Delete(&model.Education{}).Error
}

func (g *GormStore) InsertEducation(ctx context.Context, rows []model.Education) error {
	return g.db.WithContext(ctx).Create(&rows).Error
}

func (g *GormStore) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	rows := make([]model.SkillCategory, 0)
	err := g.db.WithContext(ctx).Order("sort_order").Find(&rows).Error
	return rows, err
}

func (g *GormStore) DeleteAllSkillCategories(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("id >= 0").Delete(&model.SkillCategory{}).Error
}

func (g *GormStore) InsertSkillCategories(ctx context.Context, rows []model.SkillCategory) error {
	return g.db.WithContext(ctx).Create(&rows).Error
}

func (g *GormStore) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows := make([]model.Project, 0)
	err := g.db.WithContext(ctx).Order("sort_order").Find(&rows).Error
	return rows, err
}

func (g *GormStore) DeleteAllProjects(ctx context.Context) error {
	return g.db.WithContext(ctx).Where("id >= 0").Delete(&model.Project{}).Error
}

func (g *GormStore) InsertProjects(ctx context.Context, rows []model.Project) error {
	return g.db.WithContext(ctx).Create(&rows).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
