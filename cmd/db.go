package cmd

import (
	"context"

	"github.com/emrgen/portfolio/internal/auth"
	"github.com/emrgen/portfolio/internal/config"
	"github.com/emrgen/portfolio/internal/content"
	"github.com/emrgen/portfolio/internal/model"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/emrgen/portfolio/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "db commands",
}

func init() {
	dbCmd.AddCommand(Migrate())
	dbCmd.AddCommand(Seed())
}

func Migrate() *cobra.Command {
	command := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the database",
		Run: func(cmd *cobra.Command, args []string) {
			db := config.GetDb(config.LoadConfig())
			err := model.Migrate(db)
			if err != nil {
				panic(err)
			}
		},
	}

	return command
}

func Seed() *cobra.Command {
	command := &cobra.Command{
		Use:   "seed",
		Short: "Write the default content through the persistence path",
		Run: func(cmd *cobra.Command, args []string) {
			db := config.GetDb(config.LoadConfig())
			gormStore := store.NewGormStore(db)
			if err := gormStore.Migrate(); err != nil {
				panic(err)
			}

			svc := service.NewContentService(gormStore, nil, nil)
			err := svc.Save(context.Background(), auth.Identity{Subject: "seed"}, content.DefaultDocument())
			if err != nil {
				panic(err)
			}

			logrus.Info("seeded default content")
		},
	}

	return command
}
