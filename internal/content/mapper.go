package content

import (
	"time"

	"github.com/emrgen/portfolio/internal/model"
)

// Mappers translate between the persisted row shape and the document
// shape. They are pure: the write-side mappers also assign the dense
// 0..n-1 sort_order matching final array position, which is the single
// place positional gaps left by edit-time removals get closed.

func MapPersonalInfo(row *model.PersonalInfo) PersonalInfo {
	return PersonalInfo{
		Name:             row.Name,
		Role:             row.Role,
		Tagline:          row.Tagline,
		Description:      row.Description,
		AboutDescription: row.AboutDescription,
		Email:            row.Email,
		Location:         row.Location,
		Availability:     row.Availability,
		ImageURL:         fromNullable(row.ImageURL),
		ResumeURL:        fromNullable(row.ResumeURL),
	}
}

func PersonalInfoRow(info PersonalInfo, now time.Time) *model.PersonalInfo {
	return &model.PersonalInfo{
		ID:               model.SingletonID,
		Name:             info.Name,
		Role:             info.Role,
		Tagline:          info.Tagline,
		Description:      info.Description,
		AboutDescription: info.AboutDescription,
		Email:            info.Email,
		Location:         info.Location,
		Availability:     info.Availability,
		ImageURL:         toNullable(info.ImageURL),
		ResumeURL:        toNullable(info.ResumeURL),
		UpdatedAt:        now,
	}
}

func MapSocialLinks(row *model.SocialLinks) SocialLinks {
	return SocialLinks{
		Linkedin: fromNullable(row.Linkedin),
		Github:   fromNullable(row.Github),
		Email:    fromNullable(row.Email),
	}
}

func SocialLinksRow(links SocialLinks, now time.Time) *model.SocialLinks {
	return &model.SocialLinks{
		ID:        model.SingletonID,
		Linkedin:  toNullable(links.Linkedin),
		Github:    toNullable(links.Github),
		Email:     toNullable(links.Email),
		UpdatedAt: now,
	}
}

func MapSiteMetadata(row *model.SiteMetadata) SiteMetadata {
	return SiteMetadata{
		Title:             row.Title,
		Description:       row.Description,
		URL:               row.URL,
		Image:             fromNullable(row.Image),
		Keywords:          emptyIfNil(row.Keywords),
		ProjectCategories: emptyIfNil(row.ProjectCategories),
	}
}

func SiteMetadataRow(meta SiteMetadata, now time.Time) *model.SiteMetadata {
	return &model.SiteMetadata{
		ID:                model.SingletonID,
		Title:             meta.Title,
		Description:       meta.Description,
		URL:               meta.URL,
		Image:             toNullable(meta.Image),
		Keywords:          emptyIfNil(meta.Keywords),
		ProjectCategories: emptyIfNil(meta.ProjectCategories),
		UpdatedAt:         now,
	}
}

func MapEducation(rows []model.Education) []Education {
	entries := make([]Education, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Education{
			Institution: row.Institution,
			Degree:      row.Degree,
			Period:      row.Period,
			Status:      row.Status,
			Description: row.Description,
			Skills:      emptyIfNil(row.Skills),
			SortOrder:   row.SortOrder,
		})
	}
	return entries
}

func EducationRows(entries []Education, now time.Time) []model.Education {
	rows := make([]model.Education, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, model.Education{
			Institution: entry.Institution,
			Degree:      entry.Degree,
			Period:      entry.Period,
			Status:      entry.Status,
			Description: entry.Description,
			Skills:      emptyIfNil(entry.Skills),
			SortOrder:   i,
			UpdatedAt:   now,
		})
	}
	return rows
}

func MapSkillCategories(rows []model.SkillCategory) []SkillCategory {
	categories := make([]SkillCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, SkillCategory{
			Name:        row.Name,
			Icon:        row.Icon,
			Description: row.Description,
			Items:       emptyIfNil(row.Items),
			SortOrder:   row.SortOrder,
		})
	}
	return categories
}

func SkillCategoryRows(categories []SkillCategory, now time.Time) []model.SkillCategory {
	rows := make([]model.SkillCategory, 0, len(categories))
	for i, category := range categories {
		rows = append(rows, model.SkillCategory{
			Name:        category.Name,
			Icon:        category.Icon,
			Description: category.Description,
			Items:       emptyIfNil(category.Items),
			SortOrder:   i,
			UpdatedAt:   now,
		})
	}
	return rows
}

func MapProjects(rows []model.Project) []Project {
	projects := make([]Project, 0, len(rows))
	for _, row := range rows {
		categories := emptyIfNil(row.Categories)
		if len(categories) == 0 && row.Category != "" {
			categories = []string{row.Category}
		}
		projects = append(projects, Project{
			Title:       row.Title,
			Description: row.Description,
			Categories:  categories,
			Tags:        emptyIfNil(row.Tags),
			ImageURL:    fromNullable(row.ImageURL),
			GithubURL:   fromNullable(row.GithubURL),
			DemoURL:     fromNullable(row.DemoURL),
			Featured:    row.Featured,
			SortOrder:   row.SortOrder,
		})
	}
	return projects
}

func ProjectRows(projects []Project, now time.Time) []model.Project {
	rows := make([]model.Project, 0, len(projects))
	for i, project := range projects {
		category := ""
		if len(project.Categories) > 0 {
			category = project.Categories[0]
		}
		rows = append(rows, model.Project{
			Title:       project.Title,
			Description: project.Description,
			Category:    category,
			Categories:  emptyIfNil(project.Categories),
			Tags:        emptyIfNil(project.Tags),
			ImageURL:    toNullable(project.ImageURL),
			GithubURL:   toNullable(project.GithubURL),
			DemoURL:     toNullable(project.DemoURL),
			Featured:    project.Featured,
			SortOrder:   i,
			UpdatedAt:   now,
		})
	}
	return rows
}

func fromNullable(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toNullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
