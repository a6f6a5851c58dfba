package storage

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

var _ Storage = (*Memory)(nil)

// Memory is the map-backed backend. State lives for the lifetime of the
// process and is lost on restart, which is fine for demo deployments. IDs are
// sequential counters per entity type and are never reused after deletion.
type Memory struct {
	mu sync.RWMutex

	users          map[string]*User
	about          *About
	certifications map[string]*Certification
	hackathons     map[string]*Hackathon
	projects       map[string]*Project

	nextUserID    int
	nextCertID    int
	nextHackID    int
	nextProjectID int
}

func NewMemory() *Memory {
	return &Memory{
		users:          make(map[string]*User),
		certifications: make(map[string]*Certification),
		hackathons:     make(map[string]*Hackathon),
		projects:       make(map[string]*Project),
		nextUserID:     1,
		nextCertID:     1,
		nextHackID:     1,
		nextProjectID:  1,
	}
}

func (m *Memory) GetUser(_ context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		u := *user
		return &u, nil
	}
	return nil, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	username = strings.TrimSpace(username)
	for _, user := range m.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

func (m *Memory) CreateUser(_ context.Context, username, hashedPassword string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := &User{
		ID:       strconv.Itoa(m.nextUserID),
		Username: username,
		Password: hashedPassword,
	}
	m.nextUserID++
	m.users[user.ID] = user
	u := *user
	return &u, nil
}

func (m *Memory) GetAbout(_ context.Context) (*About, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.about == nil {
		return nil, nil
	}
	about := *m.about
	return &about, nil
}

func (m *Memory) UpsertAbout(_ context.Context, params AboutParams) (*About, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.about == nil {
		m.about = &About{ID: "1"}
	}
	m.about.Bio = params.Bio
	m.about.Education = params.Education
	m.about.Languages = params.Languages
	m.about.Skills = params.Skills
	m.about.Tools = params.Tools
	m.about.UpdatedAt = time.Now()
	about := *m.about
	return &about, nil
}

func (m *Memory) GetAllCertifications(_ context.Context) ([]Certification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	certs := make([]Certification, 0, len(m.certifications))
	for _, id := range sortedIDs(m.certifications) {
		certs = append(certs, *m.certifications[id])
	}
	sort.SliceStable(certs, func(i, j int) bool {
		return certs[i].DisplayOrder < certs[j].DisplayOrder
	})
	return certs, nil
}

func (m *Memory) GetCertification(_ context.Context, id string) (*Certification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cert, ok := m.certifications[id]; ok {
		c := *cert
		return &c, nil
	}
	return nil, nil
}

func (m *Memory) CreateCertification(_ context.Context, params CertificationParams) (*Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	cert := &Certification{
		ID:            strconv.Itoa(m.nextCertID),
		Company:       strOr(params.Company, ""),
		Title:         strOr(params.Title, ""),
		Issued:        strOr(params.Issued, ""),
		Platform:      strOr(params.Platform, ""),
		Icon:          strOr(params.Icon, DefaultCertIcon),
		CardColor:     strOr(params.CardColor, DefaultCertCardColor),
		ButtonColor:   strOr(params.ButtonColor, DefaultCertButtonColor),
		TitleColor:    strOr(params.TitleColor, DefaultCertTitleColor),
		TextColor:     strOr(params.TextColor, DefaultCertTextColor),
		CertImageURL:  strOr(params.CertImageURL, ""),
		CredentialURL: params.CredentialURL,
		DisplayOrder:  intOr(params.DisplayOrder, 0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.nextCertID++
	m.certifications[cert.ID] = cert
	c := *cert
	return &c, nil
}

func (m *Memory) UpdateCertification(_ context.Context, id string, params CertificationParams) (*Certification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cert, ok := m.certifications[id]
	if !ok {
		return nil, nil
	}
	cert.Company = strOr(params.Company, cert.Company)
	cert.Title = strOr(params.Title, cert.Title)
	cert.Issued = strOr(params.Issued, cert.Issued)
	cert.Platform = strOr(params.Platform, cert.Platform)
	cert.Icon = strOr(params.Icon, cert.Icon)
	cert.CardColor = strOr(params.CardColor, cert.CardColor)
	cert.ButtonColor = strOr(params.ButtonColor, cert.ButtonColor)
	cert.TitleColor = strOr(params.TitleColor, cert.TitleColor)
	cert.TextColor = strOr(params.TextColor, cert.TextColor)
	cert.CertImageURL = strOr(params.CertImageURL, cert.CertImageURL)
	if params.CredentialURL != nil {
		cert.CredentialURL = params.CredentialURL
	}
	cert.DisplayOrder = intOr(params.DisplayOrder, cert.DisplayOrder)
	cert.UpdatedAt = time.Now()
	c := *cert
	return &c, nil
}

func (m *Memory) DeleteCertification(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.certifications[id]; !ok {
		return false, nil
	}
	delete(m.certifications, id)
	return true, nil
}

func (m *Memory) GetAllHackathons(_ context.Context) ([]Hackathon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hacks := make([]Hackathon, 0, len(m.hackathons))
	for _, id := range sortedIDs(m.hackathons) {
		hacks = append(hacks, *m.hackathons[id])
	}
	sort.SliceStable(hacks, func(i, j int) bool {
		return hacks[i].DisplayOrder < hacks[j].DisplayOrder
	})
	return hacks, nil
}

func (m *Memory) GetHackathon(_ context.Context, id string) (*Hackathon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if hack, ok := m.hackathons[id]; ok {
		h := *hack
		return &h, nil
	}
	return nil, nil
}

func (m *Memory) CreateHackathon(_ context.Context, params HackathonParams) (*Hackathon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	hack := &Hackathon{
		ID:             strconv.Itoa(m.nextHackID),
		Name:           strOr(params.Name, ""),
		Role:           strOr(params.Role, ""),
		Organizer:      strOr(params.Organizer, ""),
		Side:           strOr(params.Side, DefaultHackathonSide),
		Delay:          intOr(params.Delay, 0),
		CertificateURL: params.CertificateURL,
		DisplayOrder:   intOr(params.DisplayOrder, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.nextHackID++
	m.hackathons[hack.ID] = hack
	h := *hack
	return &h, nil
}

func (m *Memory) UpdateHackathon(_ context.Context, id string, params HackathonParams) (*Hackathon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	hack, ok := m.hackathons[id]
	if !ok {
		return nil, nil
	}
	hack.Name = strOr(params.Name, hack.Name)
	hack.Role = strOr(params.Role, hack.Role)
	hack.Organizer = strOr(params.Organizer, hack.Organizer)
	hack.Side = strOr(params.Side, hack.Side)
	hack.Delay = intOr(params.Delay, hack.Delay)
	if params.CertificateURL != nil {
		hack.CertificateURL = params.CertificateURL
	}
	hack.DisplayOrder = intOr(params.DisplayOrder, hack.DisplayOrder)
	hack.UpdatedAt = time.Now()
	h := *hack
	return &h, nil
}

func (m *Memory) DeleteHackathon(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.hackathons[id]; !ok {
		return false, nil
	}
	delete(m.hackathons, id)
	return true, nil
}

func (m *Memory) GetAllProjects(_ context.Context) ([]Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	projects := make([]Project, 0, len(m.projects))
	for _, id := range sortedIDs(m.projects) {
		projects = append(projects, *m.projects[id])
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].DisplayOrder < projects[j].DisplayOrder
	})
	return projects, nil
}

func (m *Memory) GetProject(_ context.Context, id string) (*Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if project, ok := m.projects[id]; ok {
		p := *project
		return &p, nil
	}
	return nil, nil
}

func (m *Memory) CreateProject(_ context.Context, params ProjectParams) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	technologies := params.Technologies
	if technologies == nil {
		technologies = []Technology{}
	}
	project := &Project{
		ID:           strconv.Itoa(m.nextProjectID),
		Title:        strOr(params.Title, ""),
		Description:  strOr(params.Description, ""),
		ImageURL:     strOr(params.ImageURL, ""),
		Alt:          strOr(params.Alt, ""),
		Technologies: technologies,
		LiveURL:      params.LiveURL,
		GithubURL:    strOr(params.GithubURL, ""),
		PrimaryColor: strOr(params.PrimaryColor, DefaultProjectColor),
		DisplayOrder: intOr(params.DisplayOrder, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.nextProjectID++
	m.projects[project.ID] = project
	p := *project
	return &p, nil
}

func (m *Memory) UpdateProject(_ context.Context, id string, params ProjectParams) (*Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	project, ok := m.projects[id]
	if !ok {
		return nil, nil
	}
	project.Title = strOr(params.Title, project.Title)
	project.Description = strOr(params.Description, project.Description)
	project.ImageURL = strOr(params.ImageURL, project.ImageURL)
	project.Alt = strOr(params.Alt, project.Alt)
	if params.Technologies != nil {
		project.Technologies = params.Technologies
	}
	if params.LiveURL != nil {
		project.LiveURL = params.LiveURL
	}
	project.GithubURL = strOr(params.GithubURL, project.GithubURL)
	project.PrimaryColor = strOr(params.PrimaryColor, project.PrimaryColor)
	project.DisplayOrder = intOr(params.DisplayOrder, project.DisplayOrder)
	project.UpdatedAt = time.Now()
	p := *project
	return &p, nil
}

func (m *Memory) DeleteProject(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return false, nil
	}
	delete(m.projects, id)
	return true, nil
}

func (m *Memory) Close() error { return nil }

// sortedIDs returns map keys in numeric order so that records tie-broken on
// equal display order come back in insertion order.
func sortedIDs[T any](records map[string]*T) []string {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}
