package cmd

import (
	"context"

	"github.com/emrgen/portfolio/internal/blob"
	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/config"
	"github.com/emrgen/portfolio/internal/jobs"
	"github.com/emrgen/portfolio/internal/revalidate"
	"github.com/emrgen/portfolio/internal/server"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/emrgen/portfolio/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "serve",
		Short: "start the portfolio server",
		Run: func(cmd *cobra.Command, args []string) {
			cnf := config.LoadConfig()

			db := config.GetDb(cnf)
			gormStore := store.NewGormStore(db)
			if err := gormStore.Migrate(); err != nil {
				logrus.Fatalf("error migrating database: %v", err)
			}

			var contentCache cache.ContentCache
			if cnf.RedisAddr != "" {
				contentCache = cache.NewRedisContentCache(cnf.RedisAddr, cnf.RedisPassword)
			} else {
				logrus.Warn("REDIS_ADDR is not set, using in-process content cache")
				contentCache = cache.NewMemoryContentCache()
			}

			var blobs blob.Store
			if cnf.BlobBucket != "" {
				s3Store, err := blob.NewS3Store(context.Background(), blob.S3Config{
					Region:    cnf.BlobRegion,
					Bucket:    cnf.BlobBucket,
					Endpoint:  cnf.BlobEndpoint,
					PathStyle: cnf.BlobPathStyle,
				})
				if err != nil {
					logrus.Fatalf("error creating blob store: %v", err)
				}
				blobs = s3Store
			} else {
				logrus.Warn("BLOB_S3_BUCKET is not set, uploads are disabled")
			}

			svc := service.NewContentService(gormStore, contentCache, revalidate.NewClient(cnf.RevalidateURL, cnf.RevalidateSecret))

			executor := jobs.NewTaskExecutor([]jobs.CronJob{
				jobs.NewCacheWarmTask(cnf.CacheWarmSchedule, svc, contentCache),
			})
			executor.Run()
			defer executor.Stop()

			server.NewServer(cnf, svc, contentCache, blobs).Start()
		},
	}

	return command
}
