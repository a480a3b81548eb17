package content

// DefaultDocument returns the hard-coded fallback content. The loader
// substitutes individual sections of it when the corresponding read
// fails, so the public site always has something to render.
func DefaultDocument() Document {
	return Document{
		PersonalInfo: PersonalInfo{
			Name:             "Alex Carter",
			Role:             "Software Engineer",
			Tagline:          "Building reliable systems",
			Description:      "I design and build backend services, data pipelines, and the tooling around them.",
			AboutDescription: "Engineer with a focus on distributed systems and developer experience. I enjoy turning messy problems into small, well-tested programs.",
			Email:            "alex@example.com",
			Location:         "Remote",
			Availability:     "Open to new opportunities",
			ImageURL:         "/images/profile.jpg",
			ResumeURL:        "/resume.pdf",
		},
		SocialLinks: SocialLinks{
			Linkedin: "https://linkedin.com/in/alexcarter",
			Github:   "https://github.com/alexcarter",
			Email:    "alex@example.com",
		},
		Education: []Education{
			{
				Institution: "State University",
				Degree:      "B.S. Computer Science",
				Period:      "2018 - 2022",
				Status:      "Graduated",
				Description: "Coursework in systems programming, databases, and machine learning.",
				Skills:      []string{"Algorithms", "Databases", "Distributed Systems"},
				SortOrder:   0,
			},
		},
		Skills: []SkillCategory{
			{
				Name:        "Languages",
				Icon:        "Code",
				Description: "Daily drivers for services and tooling.",
				Items:       []string{"Go", "Python", "SQL", "TypeScript"},
				SortOrder:   0,
			},
			{
				Name:        "Infrastructure",
				Icon:        "Cloud",
				Description: "Running software in production.",
				Items:       []string{"PostgreSQL", "Redis", "Docker", "AWS"},
				SortOrder:   1,
			},
		},
		Projects: []Project{
			{
				Title:       "Log Aggregation Pipeline",
				Description: "Ingests and indexes application logs from a fleet of services with near-real-time search.",
				Categories:  []string{"Backend"},
				Tags:        []string{"Go", "Kafka", "PostgreSQL"},
				ImageURL:    "/images/projects/pipeline.jpg",
				GithubURL:   "https://github.com/alexcarter/log-pipeline",
				Featured:    true,
				SortOrder:   0,
			},
			{
				Title:       "Schema Diff Tool",
				Description: "CLI that diffs two database schemas and emits the migration needed to reconcile them.",
				Categories:  []string{"Tooling"},
				Tags:        []string{"Go", "SQL"},
				ImageURL:    "/images/projects/schemadiff.jpg",
				GithubURL:   "https://github.com/alexcarter/schemadiff",
				SortOrder:   1,
			},
		},
		SiteMetadata: SiteMetadata{
			Title:             "Alex Carter - Software Engineer",
			Description:       "Portfolio of Alex Carter, software engineer.",
			URL:               "https://alexcarter.dev",
			Image:             "/images/og-image.jpg",
			Keywords:          []string{"software engineer", "backend", "go", "portfolio"},
			ProjectCategories: []string{"Backend", "Tooling", "Data"},
		},
	}
}
