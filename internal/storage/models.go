package storage

import "time"

// User is an admin account. The password field holds a bcrypt hash; the
// storage layer never hashes or compares passwords itself.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// About is the singleton biography record. At most one exists per store.
type About struct {
	ID        string    `json:"id"`
	Bio       string    `json:"bio"`
	Education string    `json:"education"`
	Languages string    `json:"languages"`
	Skills    []string  `json:"skills"`
	Tools     []string  `json:"tools"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Certification struct {
	ID            string    `json:"id"`
	Company       string    `json:"company"`
	Title         string    `json:"title"`
	Issued        string    `json:"issued"`
	Platform      string    `json:"platform"`
	Icon          string    `json:"icon"`
	CardColor     string    `json:"cardColor"`
	ButtonColor   string    `json:"buttonColor"`
	TitleColor    string    `json:"titleColor"`
	TextColor     string    `json:"textColor"`
	CertImageURL  string    `json:"certImageUrl"`
	CredentialURL *string   `json:"credentialUrl"`
	DisplayOrder  int       `json:"displayOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Hackathon struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Organizer      string    `json:"organizer"`
	Side           string    `json:"side"`
	Delay          int       `json:"delay"`
	CertificateURL *string   `json:"certificateUrl"`
	DisplayOrder   int       `json:"displayOrder"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Technology is a single entry in a project's tech stack.
type Technology struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type Project struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl"`
	Alt          string       `json:"alt"`
	Technologies []Technology `json:"technologies"`
	LiveURL      *string      `json:"liveUrl"`
	GithubURL    string       `json:"githubUrl"`
	PrimaryColor string       `json:"primaryColor"`
	DisplayOrder int          `json:"displayOrder"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Param structs carry partial writes. Nil pointers mean "not supplied": on
// create they fall back to the documented defaults, on update the existing
// value is kept.

type AboutParams struct {
	Bio       string   `json:"bio"`
	Education string   `json:"education"`
	Languages string   `json:"languages"`
	Skills    []string `json:"skills"`
	Tools     []string `json:"tools"`
}

type CertificationParams struct {
	Company       *string `json:"company"`
	Title         *string `json:"title"`
	Issued        *string `json:"issued"`
	Platform      *string `json:"platform"`
	Icon          *string `json:"icon"`
	CardColor     *string `json:"cardColor"`
	ButtonColor   *string `json:"buttonColor"`
	TitleColor    *string `json:"titleColor"`
	TextColor     *string `json:"textColor"`
	CertImageURL  *string `json:"certImageUrl"`
	CredentialURL *string `json:"credentialUrl"`
	DisplayOrder  *int    `json:"displayOrder"`
}

type HackathonParams struct {
	Name           *string `json:"name"`
	Role           *string `json:"role"`
	Organizer      *string `json:"organizer"`
	Side           *string `json:"side"`
	Delay          *int    `json:"delay"`
	CertificateURL *string `json:"certificateUrl"`
	DisplayOrder   *int    `json:"displayOrder"`
}

type ProjectParams struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	ImageURL     *string      `json:"imageUrl"`
	Alt          *string      `json:"alt"`
	Technologies []Technology `json:"technologies"`
	LiveURL      *string      `json:"liveUrl"`
	GithubURL    *string      `json:"githubUrl"`
	PrimaryColor *string      `json:"primaryColor"`
	DisplayOrder *int         `json:"displayOrder"`
}

// Defaults applied when a create request omits optional fields.
const (
	DefaultCertIcon        = "fas fa-certificate"
	DefaultCertCardColor   = "bg-blue-500"
	DefaultCertButtonColor = "bg-blue-600"
	DefaultCertTitleColor  = "text-white"
	DefaultCertTextColor   = "text-white"
	DefaultHackathonSide   = "left"
	DefaultProjectColor    = "blue"
)

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
