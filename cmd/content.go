package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/emrgen/portfolio/internal/auth"
	"github.com/emrgen/portfolio/internal/config"
	"github.com/emrgen/portfolio/internal/content"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/emrgen/portfolio/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "content commands",
}

func init() {
	contentCmd.AddCommand(showContentCmd())
	contentCmd.AddCommand(exportContentCmd())
	contentCmd.AddCommand(importContentCmd())
}

func contentService() *service.ContentService {
	db := config.GetDb(config.LoadConfig())
	return service.NewContentService(store.NewGormStore(db), nil, nil)
}

func showContentCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "show",
		Short: "print a summary of the stored content",
		Run: func(cmd *cobra.Command, args []string) {
			doc := contentService().Load(context.Background())

			fmt.Printf("%s — %s\n", doc.PersonalInfo.Name, doc.PersonalInfo.Role)
			fmt.Printf("education entries: %d\n", len(doc.Education))
			fmt.Printf("skill categories:  %d\n", len(doc.Skills))
			fmt.Printf("projects:          %d\n", len(doc.Projects))
			fmt.Printf("seo keywords:      %d\n", len(doc.SiteMetadata.Keywords))
		},
	}

	return command
}

func exportContentCmd() *cobra.Command {
	var output string

	command := &cobra.Command{
		Use:   "export",
		Short: "export the content document as json",
		Run: func(cmd *cobra.Command, args []string) {
			doc := contentService().Load(context.Background())

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				logrus.Fatalf("error encoding content: %v", err)
			}

			if output == "" {
				fmt.Println(string(data))
				return
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				logrus.Fatalf("error writing %s: %v", output, err)
			}
		},
	}

	command.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when omitted)")

	return command
}

func importContentCmd() *cobra.Command {
	var input string

	command := &cobra.Command{
		Use:   "import",
		Short: "import a content document from json and save it",
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(input)
			if err != nil {
				logrus.Fatalf("error reading %s: %v", input, err)
			}

			var doc content.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				logrus.Fatalf("error decoding content: %v", err)
			}

			err = contentService().Save(context.Background(), auth.Identity{Subject: "cli"}, doc)
			if err != nil {
				logrus.Fatalf("error saving content: %v", err)
			}

			logrus.Info("content imported")
		},
	}

	command.Flags().StringVarP(&input, "input", "i", "content.json", "input file")
	_ = command.MarkFlagRequired("input")

	return command
}
