package activity

// ExportInfo describes one successful export of a project.
type ExportInfo struct {
	ExportLayout   string
	ExportType     string
	ExportFileName string
	OutputDuration string
}

// Format returns the "<layout>-<type>" label, or just the type when no layout was recorded.
func (e ExportInfo) Format() string {
	if e.ExportLayout == "" {
		return e.ExportType
	}
	return e.ExportLayout + "-" + e.ExportType
}

// ProjectInfo accumulates what a single user did on one project.
type ProjectInfo struct {
	ProjectID   string
	ProjectName string
	// FileInfo holds the most recent file summary seen for the project.
	FileInfo string
	Prompts  []string
	Exports  []ExportInfo
}

// AddPrompt appends a prompt in arrival order.
func (p *ProjectInfo) AddPrompt(prompt string) {
	p.Prompts = append(p.Prompts, prompt)
}

// AddExport appends an export in arrival order.
func (p *ProjectInfo) AddExport(e ExportInfo) {
	p.Exports = append(p.Exports, e)
}

// UserActivity groups the projects touched by one identity.
type UserActivity struct {
	Email string

	projects map[string]*ProjectInfo
	order    []string
}

// NewUserActivity creates an empty activity for the given identity key.
func NewUserActivity(email string) *UserActivity {
	return &UserActivity{
		Email:    email,
		projects: make(map[string]*ProjectInfo),
	}
}

// Project returns the project with the given ID, if the user has touched it.
func (u *UserActivity) Project(id string) (*ProjectInfo, bool) {
	p, ok := u.projects[id]
	return p, ok
}

// AddProject stores p under its ID. A new ID is appended to the project order.
func (u *UserActivity) AddProject(p *ProjectInfo) {
	if _, ok := u.projects[p.ProjectID]; !ok {
		u.order = append(u.order, p.ProjectID)
	}
	u.projects[p.ProjectID] = p
}

// Projects returns the user's projects in first-seen order.
func (u *UserActivity) Projects() []*ProjectInfo {
	out := make([]*ProjectInfo, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.projects[id])
	}
	return out
}
