package store

import (
	"context"

	"github.com/emrgen/portfolio/internal/model"
)

type Store interface {
	SingletonStore
	CollectionStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

// SingletonStore covers the single-row record kinds. Reads return
// gorm.ErrRecordNotFound when the row has never been written; upserts
// always target model.SingletonID.
type SingletonStore interface {
	// GetPersonalInfo retrieves the personal info row.
	GetPersonalInfo(ctx context.Context) (*model.PersonalInfo, error)
	// UpsertPersonalInfo inserts or overwrites the personal info row.
	UpsertPersonalInfo(ctx context.Context, info *model.PersonalInfo) error
	// GetSocialLinks retrieves the social links row.
	GetSocialLinks(ctx context.Context) (*model.SocialLinks, error)
	// UpsertSocialLinks inserts or overwrites the social links row.
	UpsertSocialLinks(ctx context.Context, links *model.SocialLinks) error
	// GetSiteMetadata retrieves the site metadata row.
	GetSiteMetadata(ctx context.Context) (*model.SiteMetadata, error)
	// UpsertSiteMetadata inserts or overwrites the site metadata row.
	UpsertSiteMetadata(ctx context.Context, meta *model.SiteMetadata) error
}

// CollectionStore covers the ordered record kinds. Lists are returned in
// sort_order. An empty result is valid data, not an error.
type CollectionStore interface {
	// ListEducation retrieves all education rows ordered by sort_order.
	ListEducation(ctx context.Context) ([]model.Education, error)
	// DeleteAllEducation removes every education row.
	DeleteAllEducation(ctx context.Context) error
	// InsertEducation inserts education rows in the given order.
	InsertEducation(ctx context.Context, rows []model.Education) error
	// ListSkillCategories retrieves all skill category rows ordered by sort_order.
	ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error)
	// DeleteAllSkillCategories removes every skill category row.
	DeleteAllSkillCategories(ctx context.Context) error
	// InsertSkillCategories inserts skill category rows in the given order.
	InsertSkillCategories(ctx context.Context, rows []model.SkillCategory) error
	// ListProjects retrieves all project rows ordered by sort_order.
	ListProjects(ctx context.Context) ([]model.Project, error)
	// DeleteAllProjects removes every project row.
	DeleteAllProjects(ctx context.Context) error
	// InsertProjects inserts project rows in the given order.
	InsertProjects(ctx context.Context, rows []model.Project) error
}
