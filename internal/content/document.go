package content

// Document is the unified in-memory shape of the whole site content.
// The loader assembles it from the six record kinds, the admin panel
// mutates it section by section, and the writer serializes it back.
type Document struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	SocialLinks  SocialLinks     `json:"socialLinks"`
	Education    []Education     `json:"education"`
	Skills       []SkillCategory `json:"skills"`
	Projects     []Project       `json:"projects"`
	SiteMetadata SiteMetadata    `json:"siteMetadata"`
}

type PersonalInfo struct {
	Name             string `json:"name"`
	Role             string `json:"role"`
	Tagline          string `json:"tagline"`
	Description      string `json:"description"`
	AboutDescription string `json:"aboutDescription"`
	Email            string `json:"email"`
	Location         string `json:"location"`
	Availability     string `json:"availability"`
	ImageURL         string `json:"imageUrl"`
	ResumeURL        string `json:"resumeUrl"`
}

type SocialLinks struct {
	Linkedin string `json:"linkedin"`
	Github   string `json:"github"`
	Email    string `json:"email"`
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Period      string   `json:"period"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	SortOrder   int      `json:"sortOrder"`
}

type SkillCategory struct {
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
	SortOrder   int      `json:"sortOrder"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	GithubURL   string   `json:"githubUrl"`
	DemoURL     string   `json:"demoUrl"`
	Featured    bool     `json:"featured"`
	SortOrder   int      `json:"sortOrder"`
}

type SiteMetadata struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	URL               string   `json:"url"`
	Image             string   `json:"image"`
	Keywords          []string `json:"keywords"`
	ProjectCategories []string `json:"projectCategories"`
}

// IconOptions are the icon selectors a skill category may use.
var IconOptions = []string{"Code", "Brain", "Database", "BarChart3", "Wrench", "Cloud", "Cpu"}

// DefaultIcon is assigned to new skill categories.
const DefaultIcon = "Code"
