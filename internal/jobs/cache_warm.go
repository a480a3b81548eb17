package jobs

import (
	"context"
	"time"

	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/sirupsen/logrus"
)

// CacheWarmTask periodically re-reads the content from the store into
// the cache so the public read path rarely pays a cold load after the
// cache TTL or an invalidation.
type CacheWarmTask struct {
	service *service.ContentService
	cache   cache.ContentCache
	cron    string
}

func NewCacheWarmTask(schedule string, svc *service.ContentService, cache cache.ContentCache) *CacheWarmTask {
	return &CacheWarmTask{
		service: svc,
		cache:   cache,
		cron:    schedule,
	}
}

var _ CronJob = (*CacheWarmTask)(nil)

func (c *CacheWarmTask) Schedule() string {
	return c.cron
}

func (c *CacheWarmTask) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	doc := c.service.Load(ctx)
	if err := c.cache.SetDocument(ctx, &doc); err != nil {
		logrus.Warnf("cache warm failed: %v", err)
	}
}
