package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/emrgen/portfolio/internal/auth"
	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/content"
	"github.com/emrgen/portfolio/internal/store"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Invalidator signals downstream caches that rendered output derived
// from the content is stale.
type Invalidator interface {
	Trigger(ctx context.Context) error
}

// NewContentService creates a new ContentService. cache and invalidator
// may be nil; both are best-effort collaborators.
func NewContentService(store store.Store, cache cache.ContentCache, invalidator Invalidator) *ContentService {
	return &ContentService{
		store:       store,
		cache:       cache,
		invalidator: invalidator,
	}
}

// ContentService loads the unified content document and writes it back.
type ContentService struct {
	store       store.Store
	cache       cache.ContentCache
	invalidator Invalidator
}

// Load fetches all six record kinds concurrently and assembles the
// unified document. Each kind that cannot be read is substituted with
// its fallback section individually; a successfully fetched but empty
// ordered collection is kept as-is since "no entries" is real data.
// Load never fails: the public site must always have something to render.
func (c *ContentService) Load(ctx context.Context) content.Document {
	doc := content.DefaultDocument()

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		row, err := c.store.GetPersonalInfo(ctx)
		if err != nil {
			logFallback("personal_info", err)
			return
		}
		doc.PersonalInfo = content.MapPersonalInfo(row)
	}()

	go func() {
		defer wg.Done()
		row, err := c.store.GetSocialLinks(ctx)
		if err != nil {
			logFallback("social_links", err)
			return
		}
		doc.SocialLinks = content.MapSocialLinks(row)
	}()

	go func() {
		defer wg.Done()
		row, err := c.store.GetSiteMetadata(ctx)
		if err != nil {
			logFallback("site_metadata", err)
			return
		}
		doc.SiteMetadata = content.MapSiteMetadata(row)
	}()

	go func() {
		defer wg.Done()
		rows, err := c.store.ListEducation(ctx)
		if err != nil {
			logFallback("education", err)
			return
		}
		doc.Education = content.MapEducation(rows)
	}()

	go func() {
		defer wg.Done()
		rows, err := c.store.ListSkillCategories(ctx)
		if err != nil {
			logFallback("skill_categories", err)
			return
		}
		doc.Skills = content.MapSkillCategories(rows)
	}()

	go func() {
		defer wg.Done()
		rows, err := c.store.ListProjects(ctx)
		if err != nil {
			logFallback("projects", err)
			return
		}
		doc.Projects = content.MapProjects(rows)
	}()

	wg.Wait()

	return doc
}

// StartSession loads the current content into a fresh editing session.
func (c *ContentService) StartSession(ctx context.Context) *content.Session {
	return content.NewSession(c.Load(ctx))
}

// Save serializes the document back into the store: one upsert per
// singleton kind, then one delete-then-reinsert pass per ordered
// collection, each pass inside its own transaction so a reader never
// observes the zero-row window. Steps run sequentially and the whole
// save aborts on the first error, which is returned verbatim; writes
// committed before the failing step stay committed. After all six
// steps succeed the cache is dropped and the invalidation signal is
// fired from a detached goroutine whose outcome never affects the
// reported result.
func (c *ContentService) Save(ctx context.Context, ident auth.Identity, doc content.Document) error {
	if !ident.Present() {
		return ErrNotAuthenticated
	}

	now := time.Now().UTC()

	if err := c.store.UpsertPersonalInfo(ctx, content.PersonalInfoRow(doc.PersonalInfo, now)); err != nil {
		return err
	}
	if err := c.store.UpsertSocialLinks(ctx, content.SocialLinksRow(doc.SocialLinks, now)); err != nil {
		return err
	}
	if err := c.store.UpsertSiteMetadata(ctx, content.SiteMetadataRow(doc.SiteMetadata, now)); err != nil {
		return err
	}

	err := c.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.DeleteAllEducation(ctx); err != nil {
			return err
		}
		rows := content.EducationRows(doc.Education, now)
		if len(rows) == 0 {
			return nil
		}
		return tx.InsertEducation(ctx, rows)
	})
	if err != nil {
		return err
	}

	err = c.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.DeleteAllSkillCategories(ctx); err != nil {
			return err
		}
		rows := content.SkillCategoryRows(doc.Skills, now)
		if len(rows) == 0 {
			return nil
		}
		return tx.InsertSkillCategories(ctx, rows)
	})
	if err != nil {
		return err
	}

	err = c.store.Transaction(ctx, func(tx store.Store) error {
		if err := tx.DeleteAllProjects(ctx); err != nil {
			return err
		}
		rows := content.ProjectRows(doc.Projects, now)
		if len(rows) == 0 {
			return nil
		}
		return tx.InsertProjects(ctx, rows)
	})
	if err != nil {
		return err
	}

	logrus.Infof("content saved by %s", ident.Subject)

	if c.cache != nil {
		if err := c.cache.DeleteDocument(ctx); err != nil {
			logrus.Warnf("failed to drop content cache: %v", err)
		}
	}

	if c.invalidator != nil {
		// fire and forget, the save result is already decided
		go func() {
			if err := c.invalidator.Trigger(context.Background()); err != nil {
				logrus.Warnf("revalidation failed: %v", err)
			}
		}()
	}

	return nil
}

// Published returns the document served on the public read path,
// consulting the cache first. Cache errors degrade to a fresh load.
func (c *ContentService) Published(ctx context.Context) content.Document {
	if c.cache != nil {
		cached, err := c.cache.GetDocument(ctx)
		if err != nil {
			logrus.Warnf("content cache read failed: %v", err)
		} else if cached != nil {
			return *cached
		}
	}

	doc := c.Load(ctx)

	if c.cache != nil {
		if err := c.cache.SetDocument(ctx, &doc); err != nil {
			logrus.Warnf("content cache write failed: %v", err)
		}
	}

	return doc
}

func logFallback(kind string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logrus.Infof("no %s row yet, using fallback content", kind)
		return
	}
	logrus.Warnf("failed to read %s, using fallback content: %v", kind, err)
}
