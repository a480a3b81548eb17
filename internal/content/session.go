package content

// Session owns the unified document for the duration of one editing
// session: created when the editor signs in, discarded on sign-out or
// reload. It is a state container only; every setter replaces its
// section wholesale with a value produced by the collection editors,
// so there is no partial-field merge at this layer. Not safe for
// concurrent use, matching the single-editor model.
type Session struct {
	doc Document
}

func NewSession(doc Document) *Session {
	return &Session{doc: doc}
}

// Document returns the current unified document.
func (s *Session) Document() Document {
	return s.doc
}

func (s *Session) SetPersonalInfo(info PersonalInfo) {
	s.doc.PersonalInfo = info
}

func (s *Session) SetSocialLinks(links SocialLinks) {
	s.doc.SocialLinks = links
}

func (s *Session) SetEducation(entries []Education) {
	s.doc.Education = entries
}

func (s *Session) SetSkillCategories(categories []SkillCategory) {
	s.doc.Skills = categories
}

func (s *Session) SetProjects(projects []Project) {
	s.doc.Projects = projects
}

func (s *Session) SetSiteMetadata(meta SiteMetadata) {
	s.doc.SiteMetadata = meta
}
